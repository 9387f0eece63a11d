package modely

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func postSchema() *Schema {
	return NewSchema("post",
		NewString("title"),
		NewInt("views", WithDefault(0)),
		NewFloat("rating"),
		NewBool("published"),
		NewDate("created", "2006-01-02"),
	)
}

func TestModel_Set(t *testing.T) {
	schema := postSchema()

	var testCases = []struct {
		description string
		name        string
		value       interface{}
		expect      interface{}
		hasError    bool
	}{
		{
			description: "string coercion",
			name:        "title",
			value:       42,
			expect:      "42",
		},
		{
			description: "int from string",
			name:        "views",
			value:       "33",
			expect:      33,
		},
		{
			description: "unconvertible scalar kept as is",
			name:        "views",
			value:       "not a number",
			expect:      "not a number",
		},
		{
			description: "date parsed from raw form",
			name:        "created",
			value:       "2020-01-01",
			expect:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "date accepts native form",
			name:        "created",
			value:       time.Date(2020, 1, 1, 5, 6, 7, 0, time.UTC),
			expect:      time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			description: "date rejects unsupported shape",
			name:        "created",
			value:       []int{1},
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		model := schema.NewModel()
		err := model.Set(testCase.name, testCase.value)
		if testCase.hasError {
			assert.True(t, errors.Is(err, ErrTypeMismatch), testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		actual, err := model.Value(testCase.name)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}
}

func TestModel_SetEquivalence(t *testing.T) {
	schema := postSchema()

	fromRaw := schema.NewModel()
	assert.Nil(t, fromRaw.Set("created", "2020-01-01"))

	fromNative := schema.NewModel()
	assert.Nil(t, fromNative.Set("created", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)))

	assert.True(t, fromRaw.Equal(fromNative))
}

func TestModel_ExtraValues(t *testing.T) {
	schema := postSchema()
	model := schema.NewModel()

	assert.Nil(t, model.Set("unknown", "kept as is"))
	assert.True(t, model.Has("unknown"))

	value, err := model.Value("unknown")
	assert.Nil(t, err)
	assert.EqualValues(t, "kept as is", value)

	extra, ok := model.Extra("unknown")
	assert.True(t, ok)
	assert.EqualValues(t, "kept as is", extra)

	//extras never reach the projection
	serial, err := model.Serial()
	assert.Nil(t, err)
	_, has := serial["unknown"]
	assert.False(t, has)

	_, err = model.Value("never seen")
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestModel_Presence(t *testing.T) {
	schema := postSchema()
	model := schema.NewModel()

	//only defaulted fields hold a value on a fresh instance
	assert.True(t, model.Has("views"))
	assert.False(t, model.Has("title"))

	title, err := model.String("title")
	assert.Nil(t, err)
	assert.EqualValues(t, "", title)

	serial, err := model.Serial()
	assert.Nil(t, err)
	assert.EqualValues(t, map[string]interface{}{"views": 0}, serial)

	assert.Nil(t, model.Set("title", "now present"))
	assert.True(t, model.Has("title"))
}

func TestModel_AddField(t *testing.T) {
	schema := postSchema()
	model := schema.NewModel()
	other := schema.NewModel()

	err := model.AddField("score", "9.5", NewFloat("score"))
	assert.Nil(t, err)

	score, err := model.Float64("score")
	assert.Nil(t, err)
	assert.EqualValues(t, 9.5, score)

	serial, err := model.Serial()
	assert.Nil(t, err)
	assert.EqualValues(t, 9.5, serial["score"])

	//instance fields stay with their instance
	_, err = other.Value("score")
	assert.True(t, errors.Is(err, ErrUnknownField))

	//equality only considers declared fields
	assert.True(t, model.Equal(other))
	assert.Nil(t, other.Set("title", "x"))
	assert.False(t, model.Equal(other))
	assert.Nil(t, model.Set("title", "x"))
	assert.True(t, model.Equal(other))
}

func TestModel_SetData(t *testing.T) {
	schema := NewSchema("contact",
		NewString("name"),
		NewString("email", WithSource("contact_email")),
	)

	model := schema.NewModel()
	err := model.SetData(map[string]interface{}{
		"name":          "ann",
		"contact_email": "ann@example.com",
		"ignored":       true,
	})
	assert.Nil(t, err)

	email, err := model.String("email")
	assert.Nil(t, err)
	assert.EqualValues(t, "ann@example.com", email)

	//unmatched raw keys are dropped, not stashed
	assert.False(t, model.Has("ignored"))

	//model to model transfer goes through the name keyed projection, fields
	//renamed by source are not carried over
	clone := schema.NewModel()
	assert.Nil(t, clone.SetData(model))
	name, err := clone.String("name")
	assert.Nil(t, err)
	assert.EqualValues(t, "ann", name)
	assert.False(t, clone.Has("email"))

	foreign := NewSchema("other", NewString("name")).NewModel()
	err = model.SetData(foreign)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	err = model.SetData("bogus")
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestModel_Equal(t *testing.T) {
	schema := postSchema()

	var testCases = []struct {
		description string
		left        func() *Model
		right       func() *Model
		expect      bool
	}{
		{
			description: "fresh instances share defaults",
			left:        schema.NewModel,
			right:       schema.NewModel,
			expect:      true,
		},
		{
			description: "same values",
			left: func() *Model {
				m := schema.NewModel()
				_ = m.Set("title", "a")
				_ = m.Set("created", "2020-01-01")
				return m
			},
			right: func() *Model {
				m := schema.NewModel()
				_ = m.Set("created", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
				_ = m.Set("title", "a")
				return m
			},
			expect: true,
		},
		{
			description: "different values",
			left: func() *Model {
				m := schema.NewModel()
				_ = m.Set("title", "a")
				return m
			},
			right: func() *Model {
				m := schema.NewModel()
				_ = m.Set("title", "b")
				return m
			},
			expect: false,
		},
		{
			description: "present versus absent",
			left: func() *Model {
				m := schema.NewModel()
				_ = m.Set("title", "")
				return m
			},
			right:  schema.NewModel,
			expect: false,
		},
		{
			description: "extras do not take part",
			left: func() *Model {
				m := schema.NewModel()
				_ = m.Set("stash", 1)
				return m
			},
			right: schema.NewModel,
			expect: true,
		},
	}

	for _, testCase := range testCases {
		actual := testCase.left().Equal(testCase.right())
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
	}

	foreign := NewSchema("post", NewString("title")).NewModel()
	assert.False(t, schema.NewModel().Equal(foreign))
	assert.False(t, schema.NewModel().Equal(nil))
}

func TestModel_NestedComposition(t *testing.T) {
	inner := NewSchema("inner", NewString("value"))
	schema := NewSchema("outer",
		NewString("outer"),
		NewNested("inner", inner),
	)

	model, err := schema.FromMap(map[string]interface{}{
		"outer": "hi",
		"inner": map[string]interface{}{"value": "x"},
	})
	assert.Nil(t, err)

	serial, err := model.Serial()
	assert.Nil(t, err)
	assert.EqualValues(t, map[string]interface{}{
		"outer": "hi",
		"inner": map[string]interface{}{"value": "x"},
	}, serial)

	child, err := model.Nested("inner")
	assert.Nil(t, err)
	value, err := child.String("value")
	assert.Nil(t, err)
	assert.EqualValues(t, "x", value)
}

func TestModel_NestedCollection(t *testing.T) {
	item := NewSchema("item", NewString("sku"), NewInt("qty"))
	schema := NewSchema("order",
		NewString("id"),
		NewNestedSlice("items", item),
	)

	model, err := schema.FromMap(map[string]interface{}{
		"id": "o-1",
		"items": []interface{}{
			map[string]interface{}{"sku": "a", "qty": 1},
			map[string]interface{}{"sku": "b", "qty": "2"},
		},
	})
	assert.Nil(t, err)

	items, err := model.Models("items")
	assert.Nil(t, err)
	assert.EqualValues(t, 2, len(items))
	qty, err := items[1].Int("qty")
	assert.Nil(t, err)
	assert.EqualValues(t, 2, qty)

	serial, err := model.Serial()
	assert.Nil(t, err)
	assert.EqualValues(t, []interface{}{
		map[string]interface{}{"sku": "a", "qty": 1},
		map[string]interface{}{"sku": "b", "qty": 2},
	}, serial["items"])
}

func TestSchema_FromValues(t *testing.T) {
	schema := postSchema()
	model, err := schema.FromValues(map[string]interface{}{
		"title":   "kwargs style",
		"rating":  "4.5",
		"stashed": []int{1, 2},
	})
	assert.Nil(t, err)

	rating, err := model.Float64("rating")
	assert.Nil(t, err)
	assert.EqualValues(t, 4.5, rating)

	//values without a declared field land in extras
	stashed, ok := model.Extra("stashed")
	assert.True(t, ok)
	assert.EqualValues(t, []int{1, 2}, stashed)
}

func TestModel_TypedAccessors(t *testing.T) {
	schema := NewSchema("sample",
		NewString("name"),
		NewInt("count"),
		NewTimestamp("at"),
		NewDuration("elapsed"),
	)
	model := schema.NewModel()
	assert.Nil(t, model.Set("name", 7))
	assert.Nil(t, model.Set("count", "3"))
	assert.Nil(t, model.Set("at", 1583317230))

	name, err := model.String("name")
	assert.Nil(t, err)
	assert.EqualValues(t, "7", name)

	count, err := model.Int("count")
	assert.Nil(t, err)
	assert.EqualValues(t, 3, count)

	at, err := model.Time("at")
	assert.Nil(t, err)
	assert.EqualValues(t, time.Unix(1583317230, 0).UTC(), at)

	//absent known fields report zero values without an error
	elapsed, err := model.Value("elapsed")
	assert.Nil(t, err)
	assert.Nil(t, elapsed)
	_, err = model.Int("missing_count")
	assert.True(t, errors.Is(err, ErrUnknownField))
}
