package textnorm

import (
	"strings"
	"testing"
)

func TestNormalizeNFKC(t *testing.T) {
	n := New(ScriptChinese, nil)

	// Full-width forms compose down to ASCII
	got := n.Normalize("ＡＢＣ１２３")
	if got != "ABC123" {
		t.Errorf("Expected ABC123, got %q", got)
	}
}

func TestNormalizeKeepsTargetScript(t *testing.T) {
	n := New(ScriptChinese, nil)

	got := n.Normalize("不喜欢 this 产品")
	for _, want := range []string{"不喜欢", "this", "产品"} {
		if !strings.Contains(got, want) {
			t.Errorf("Normalized text %q should contain %q", got, want)
		}
	}
}

// URLs, emails and mentions must survive normalization unharmed so
// the preprocessor stages can still match them.
func TestNormalizeKeepsASCIIStructure(t *testing.T) {
	n := New(ScriptChinese, nil)

	got := n.Normalize("看 http://x.co/a?b=1&c=2 或 me@x.co 吧")
	for _, want := range []string{"http://x.co/a?b=1&c=2", "me@x.co"} {
		if !strings.Contains(got, want) {
			t.Errorf("Normalized text %q should contain %q", got, want)
		}
	}
}

func TestNormalizeFiltersForeignScript(t *testing.T) {
	n := New(ScriptChinese, nil)

	// Cyrillic is outside every kept class for the Chinese profile
	got := n.Normalize("产品 привет 好")
	if strings.Contains(got, "привет") {
		t.Errorf("Foreign script should be filtered, got %q", got)
	}
	if !strings.Contains(got, "产品") || !strings.Contains(got, "好") {
		t.Errorf("Chinese text should survive, got %q", got)
	}
}

func TestNormalizeKoreanScript(t *testing.T) {
	n := New(ScriptKorean, nil)

	got := n.Normalize("쿠팡에서 샀는데 产品")
	if !strings.Contains(got, "쿠팡에서") {
		t.Errorf("Hangul should survive, got %q", got)
	}
	if strings.Contains(got, "产品") {
		t.Errorf("CJK ideographs should be filtered for Korean, got %q", got)
	}
}

func TestCollapseRepeats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ㅋㅋㅋㅋㅋㅋ", "ㅋㅋㅋ"},
		{"aaabbb", "aaabbb"},
		{"aaaab", "aaab"},
		{"", ""},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		if got := CollapseRepeats(tt.in, 3); got != tt.want {
			t.Errorf("CollapseRepeats(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeStripsHTML(t *testing.T) {
	n := New(ScriptChinese, nil)

	got := n.Normalize("<html><body><script>var x=1;</script><p>好产品</p></body></html>")
	if strings.Contains(got, "var") || strings.Contains(got, "script") {
		t.Errorf("Script content should be stripped, got %q", got)
	}
	if !strings.Contains(got, "好产品") {
		t.Errorf("Body text should survive, got %q", got)
	}
}

func TestNormalizeMalformedInput(t *testing.T) {
	n := New(ScriptChinese, nil)

	// Invalid UTF-8 and control characters never panic; the filter
	// normalizes them away.
	got := n.Normalize("好\x00\x01产品\xff")
	if !strings.Contains(got, "好") {
		t.Errorf("Valid text should survive malformed neighbors, got %q", got)
	}
}

func TestNormalizeEmptyResult(t *testing.T) {
	n := New(ScriptChinese, nil)

	if got := n.Normalize("привет мир"); got != "" {
		t.Errorf("Pure foreign text should normalize to empty, got %q", got)
	}
}

func TestIsEmoji(t *testing.T) {
	if !IsEmoji('😀') {
		t.Error("😀 should be emoji")
	}
	if IsEmoji('好') || IsEmoji('a') {
		t.Error("Regular characters are not emoji")
	}
}
