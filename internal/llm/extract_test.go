package llm

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "\n  {\"a\":1}  \n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"leading prose", `Sure! Here is the question: {"a":1}`, `{"a":1}`},
		{"trailing prose", `{"a":{"b":2}} Let me know if you need more.`, `{"a":{"b":2}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Fatalf("ExtractJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestExtractJSON_Errors(t *testing.T) {
	for _, in := range []string{"", "no braces here", `"just a string"`, `{"a": }`, "} backwards {"} {
		if _, err := ExtractJSON(in); err == nil {
			t.Errorf("ExtractJSON(%q) expected error", in)
		}
	}
}
