package modely

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/tagly/format/text"
)

type testAuthor struct {
	Name  string `modely:"name"`
	Email string `modely:"email,source=contact_email"`
}

type testPost struct {
	Title     string      `modely:"title"`
	Views     int         `modely:"views"`
	Rating    float64     `modely:"rating"`
	Published bool        `modely:"published"`
	Created   time.Time   `modely:"created,layout=2006-01-02"`
	Author    *testAuthor `modely:"author"`
	Tags      []string    `modely:"tags"`
	Secret    string      `modely:"-"`
}

func TestSchemaOf(t *testing.T) {
	schema, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	assert.EqualValues(t, "testPost", schema.Name())

	var testCases = []struct {
		description string
		name        string
		kind        Kind
		source      string
		nullable    bool
	}{
		{description: "string field", name: "title", kind: KindString, source: "title"},
		{description: "int field", name: "views", kind: KindInt, source: "views"},
		{description: "float field", name: "rating", kind: KindFloat, source: "rating"},
		{description: "bool field", name: "published", kind: KindBool, source: "published"},
		{description: "time field", name: "created", kind: KindDateTime, source: "created"},
		{description: "nested ptr field", name: "author", kind: KindNested, source: "author", nullable: true},
		{description: "repeated field", name: "tags", kind: KindRepeated, source: "tags"},
	}
	for _, testCase := range testCases {
		field := schema.Lookup(testCase.name)
		if !assert.NotNil(t, field, testCase.description) {
			continue
		}
		assert.EqualValues(t, testCase.kind, field.Kind(), testCase.description)
		assert.EqualValues(t, testCase.source, field.Source(), testCase.description)
		assert.EqualValues(t, testCase.nullable, field.Nullable(), testCase.description)
	}
	assert.Nil(t, schema.Lookup("Secret"))
	assert.EqualValues(t, "2006-01-02", schema.Lookup("created").Layout())

	nested := schema.Lookup("author").Schema()
	if assert.NotNil(t, nested) {
		assert.EqualValues(t, "contact_email", nested.Lookup("email").Source())
	}
}

func TestSchemaOf_Cached(t *testing.T) {
	first, err := SchemaOf(testPost{})
	assert.Nil(t, err)
	second, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	assert.True(t, first == second)
}

func TestSchemaOf_SourceCaseFormat(t *testing.T) {
	type entity struct {
		ID       int
		UserName string
		LastSeen time.Time
	}
	schema, err := SchemaOf(entity{}, WithSourceCaseFormat(text.CaseFormatLowerUnderscore))
	assert.Nil(t, err)
	assert.EqualValues(t, "id", schema.Lookup("ID").Source())
	assert.EqualValues(t, "user_name", schema.Lookup("UserName").Source())
	assert.EqualValues(t, "last_seen", schema.Lookup("LastSeen").Source())
}

func TestSchema_FromStruct(t *testing.T) {
	schema, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	post := &testPost{
		Title:     "hello",
		Views:     12,
		Rating:    4.5,
		Published: true,
		Created:   time.Date(2020, 3, 4, 0, 0, 0, 0, time.UTC),
		Author:    &testAuthor{Name: "ann", Email: "ann@example.com"},
		Tags:      []string{"go", "data"},
	}
	model, err := schema.FromStruct(post)
	assert.Nil(t, err)

	title, err := model.String("title")
	assert.Nil(t, err)
	assert.EqualValues(t, "hello", title)
	views, err := model.Int("views")
	assert.Nil(t, err)
	assert.EqualValues(t, 12, views)

	author, err := model.Nested("author")
	assert.Nil(t, err)
	if assert.NotNil(t, author) {
		email, err := author.String("email")
		assert.Nil(t, err)
		assert.EqualValues(t, "ann@example.com", email)
	}

	serial, err := model.Serial()
	assert.Nil(t, err)
	assert.EqualValues(t, "2020-03-04", serial["created"])
	assert.EqualValues(t, []interface{}{"go", "data"}, serial["tags"])
}

func TestSchema_FromStruct_NilNested(t *testing.T) {
	schema, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	model, err := schema.FromStruct(&testPost{Title: "bare"})
	assert.Nil(t, err)
	assert.False(t, model.Has("author"))
	serial, err := model.Serial()
	assert.Nil(t, err)
	_, has := serial["author"]
	assert.False(t, has)
}

func TestModel_Into(t *testing.T) {
	schema, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	model, err := schema.FromMap(map[string]interface{}{
		"title":     "round trip",
		"views":     "33",
		"rating":    "2.5",
		"published": "true",
		"created":   "2021-07-08",
		"author":    map[string]interface{}{"name": "bo", "contact_email": "bo@example.com"},
		"tags":      []interface{}{"x", "y"},
	})
	assert.Nil(t, err)

	actual := &testPost{}
	err = model.Into(actual)
	assert.Nil(t, err)
	assert.EqualValues(t, "round trip", actual.Title)
	assert.EqualValues(t, 33, actual.Views)
	assert.EqualValues(t, 2.5, actual.Rating)
	assert.True(t, actual.Published)
	assert.EqualValues(t, time.Date(2021, 7, 8, 0, 0, 0, 0, time.UTC), actual.Created)
	if assert.NotNil(t, actual.Author) {
		assert.EqualValues(t, "bo", actual.Author.Name)
		assert.EqualValues(t, "bo@example.com", actual.Author.Email)
	}
	assert.EqualValues(t, []string{"x", "y"}, actual.Tags)
}

func TestModel_Into_PartialLeavesZeroValues(t *testing.T) {
	schema, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	model, err := schema.FromMap(map[string]interface{}{"views": 7})
	assert.Nil(t, err)

	actual := &testPost{Title: "keep me"}
	err = model.Into(actual)
	assert.Nil(t, err)
	assert.EqualValues(t, "keep me", actual.Title)
	assert.EqualValues(t, 7, actual.Views)
	assert.Nil(t, actual.Author)
}

func TestStructRoundTrip(t *testing.T) {
	schema, err := SchemaOf(&testPost{})
	assert.Nil(t, err)
	source := &testPost{
		Title:   "loop",
		Views:   5,
		Created: time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC),
		Tags:    []string{"a"},
	}
	model, err := schema.FromStruct(source)
	assert.Nil(t, err)
	data, err := model.JSON()
	assert.Nil(t, err)
	restored, err := schema.FromJSON(data)
	assert.Nil(t, err)
	actual := &testPost{}
	err = restored.Into(actual)
	assert.Nil(t, err)
	assert.EqualValues(t, source.Title, actual.Title)
	assert.EqualValues(t, source.Views, actual.Views)
	assert.EqualValues(t, source.Created, actual.Created)
	assert.EqualValues(t, source.Tags, actual.Tags)
}
