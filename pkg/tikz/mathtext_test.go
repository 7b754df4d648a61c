package tikz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMathSpans(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain only", "hello world", []string{"hello world"}},
		{"math only", "$e_t$", []string{"$e_t$"}},
		{"mixed", `\small A $e_t$`, []string{`\small A `, "$e_t$"}},
		{"two math spans", "$a$ + $b$", []string{"$a$", " + ", "$b$"}},
		{"escaped dollar stays plain", `price \$5`, []string{`price \$5`}},
		{"escaped dollar inside math", `$E=\$5$`, []string{`$E=\$5$`}},
		{"unterminated math is plain", "$e_t", []string{"$e_t"}},
		{"empty", "", nil},
		{"adjacent spans", "$a$$b$", []string{"$a$", "$b$"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitMathSpans(tt.input))
		})
	}
}

func TestSplitMathSpansConcatenation(t *testing.T) {
	// Splitting never loses or reorders text.
	inputs := []string{
		`\small $\,\boldsymbol{+}$  $e_c(t)$  $\frac{a}{b} $  $\ \boldsymbol{-}$`,
		`a \\ $x$ trailing`,
		`\$ not math $real$ \$`,
		"$unclosed and $closed$",
	}
	for _, input := range inputs {
		assert.Equal(t, input, strings.Join(SplitMathSpans(input), ""), "input %q", input)
	}
}

func TestSplitOptions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			"label with math comma",
			`[american voltage source, l_={$e(t), a(t)$}]`,
			[]string{"american voltage source", `l_={$e(t), a(t)$}`},
		},
		{
			"braced group comma",
			`[a={1,2}, b]`,
			[]string{"a={1,2}", "b"},
		},
		{
			"no brackets",
			"R, l={$R_1$}",
			[]string{"R", "l={$R_1$}"},
		},
		{
			"escaped comma",
			`[a\,b, c]`,
			[]string{`a\,b`, "c"},
		},
		{
			"single part",
			"[cute inductor]",
			[]string{"cute inductor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitOptions(tt.input))
		})
	}
}

func TestExtractLabel(t *testing.T) {
	tests := []struct {
		name      string
		option    string
		otherSide bool
		value     string
		ok        bool
	}{
		{"plain l", "l={$L_1$}", false, "L_1", true},
		{"other side", "l_={$e(t)$}", true, "e(t)", true},
		{"balanced inner pairs strip", "l={$a$ + $b$}", false, "a$ + $b", true},
		{"odd inner dollars keep", `l={$a\$b$}`, false, `$a\$b$`, true},
		{"no braces", "l=5mm", false, "", false},
		{"other side no braces", "l_=5mm", true, "", false},
		{"not a label", "cute inductor", false, "", false},
		{"nested braces", "l={{R}}", false, "{R}", true},
		{"empty braces", "l={}", false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			otherSide, value, ok := ExtractLabel(tt.option)
			assert.Equal(t, tt.otherSide, otherSide)
			assert.Equal(t, tt.value, value)
			assert.Equal(t, tt.ok, ok)
		})
	}
}
