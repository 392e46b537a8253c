// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cases_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/prism-go/internal/cases"
)

func TestCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		str                        string
		snake, enum, camel, pascal string
		naivePascal                string
	}{
		{str: ""},
		{str: "_"},
		{str: "__"},

		{
			str:   "foo",
			snake: "foo", enum: "FOO",
			camel: "foo", pascal: "Foo",
			naivePascal: "Foo",
		},
		{
			str:   "FOO4",
			snake: "foo4", enum: "FOO4",
			camel: "foo4", pascal: "Foo4",
			naivePascal: "Foo4",
		},
		{
			str:   "_foo",
			snake: "foo", enum: "FOO",
			camel: "foo", pascal: "Foo",
			naivePascal: "Foo",
		},
		{
			str:   "message_loc",
			snake: "message_loc", enum: "MESSAGE_LOC",
			camel: "messageLoc", pascal: "MessageLoc",
			naivePascal: "MessageLoc",
		},
		{
			str:   "call_operator__loc",
			snake: "call_operator_loc", enum: "CALL_OPERATOR_LOC",
			camel: "callOperatorLoc", pascal: "CallOperatorLoc",
			naivePascal: "CallOperatorLoc",
		},
		{
			str:   "VARIABLE_CALL",
			snake: "variable_call", enum: "VARIABLE_CALL",
			camel: "variableCall", pascal: "VariableCall",
			naivePascal: "VariableCall",
		},
		{
			str:   "fooBar",
			snake: "foo_bar", enum: "FOO_BAR",
			camel: "fooBar", pascal: "FooBar",
			naivePascal: "Foobar",
		},
		{
			str:   "FOOBar",
			snake: "foo_bar", enum: "FOO_BAR",
			camel: "fooBar", pascal: "FooBar",
			naivePascal: "Foobar",
		},
	}

	for _, test := range tests {
		t.Run(test.str, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.snake, cases.Snake.Convert(test.str))
			assert.Equal(t, test.enum, cases.Enum.Convert(test.str))
			assert.Equal(t, test.camel, cases.Camel.Convert(test.str))
			assert.Equal(t, test.pascal, cases.Pascal.Convert(test.str))
			assert.Equal(t, test.naivePascal, cases.Converter{Case: cases.Pascal, NaiveSplit: true}.Convert(test.str))
		})
	}
}

func TestInitialisms(t *testing.T) {
	t.Parallel()

	c := cases.Converter{
		Case:        cases.Pascal,
		NaiveSplit:  true,
		Initialisms: map[string]string{"UTF8": "UTF8", "8BIT": "8Bit"},
	}
	assert.Equal(t, "ForcedUTF8Encoding", c.Convert("FORCED_UTF8_ENCODING"))
	assert.Equal(t, "Ascii8Bit", c.Convert("ASCII_8BIT"))

	c.Case = cases.Camel
	assert.Equal(t, "utf8Encoding", c.Convert("UTF8_ENCODING"))
}
