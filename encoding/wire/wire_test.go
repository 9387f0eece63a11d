package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodec_Encode(t *testing.T) {
	var testCases = []struct {
		description string
		codec       *Codec
		value       interface{}
		expect      string
	}{
		{
			description: "sorted keys",
			codec:       New(),
			value:       map[string]interface{}{"b": 2, "a": "x"},
			expect:      `{"a":"x","b":2}`,
		},
		{
			description: "nested tree",
			codec:       New(),
			value: map[string]interface{}{
				"name":  "root",
				"items": []interface{}{1, 2, 3},
				"inner": map[string]interface{}{"flag": true},
			},
			expect: `{"inner":{"flag":true},"items":[1,2,3],"name":"root"}`,
		},
		{
			description: "null value",
			codec:       New(),
			value:       map[string]interface{}{"gone": nil},
			expect:      `{"gone":null}`,
		},
	}

	for _, testCase := range testCases {
		actual, err := testCase.codec.Encode(testCase.value)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, string(actual), testCase.description)
	}
}

func TestCodec_Decode(t *testing.T) {
	codec := New()
	value, err := codec.Decode([]byte(`{"count":3,"ratio":0.5,"name":"abc","flag":true,"gone":null}`))
	assert.Nil(t, err)
	object, ok := value.(map[string]interface{})
	assert.True(t, ok)
	assert.EqualValues(t, int64(3), object["count"])
	assert.EqualValues(t, 0.5, object["ratio"])
	assert.EqualValues(t, "abc", object["name"])
	assert.EqualValues(t, true, object["flag"])
	gone, has := object["gone"]
	assert.True(t, has)
	assert.Nil(t, gone)
}

func TestCodec_DecodeObject(t *testing.T) {
	codec := New()
	_, err := codec.DecodeObject([]byte(`[1,2]`))
	assert.NotNil(t, err)
	object, err := codec.DecodeObject([]byte(`{"a":1}`))
	assert.Nil(t, err)
	assert.EqualValues(t, int64(1), object["a"])
}

func TestCodec_RoundTrip(t *testing.T) {
	codec := New(WithIndent(2))
	source := map[string]interface{}{"a": int64(1), "b": []interface{}{"x", "y"}}
	data, err := codec.Encode(source)
	assert.Nil(t, err)
	actual, err := codec.Decode(data)
	assert.Nil(t, err)
	assert.EqualValues(t, source, actual)
}
