package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  language.Tag
		ok    bool
	}{
		{value: "fr", want: language.French, ok: true},
		{value: " FR-ca ", want: language.French, ok: true},
		{value: "en-GB", want: language.English, ok: true},
		{value: "de", want: language.English, ok: false},
		{value: "not a tag!", want: language.English, ok: false},
		{value: "", want: language.English, ok: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.value)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseTag(%q) = %v, %v, want %v, %v", tc.value, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	accept, _, err := language.ParseAcceptLanguage("de-DE,fr;q=0.8,en;q=0.5")
	if err != nil {
		t.Fatalf("ParseAcceptLanguage() error = %v", err)
	}
	if got := MatchTags(accept); got != language.French {
		t.Fatalf("MatchTags() = %v, want %v", got, language.French)
	}
	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want default", got)
	}
	ja := []language.Tag{language.Japanese}
	if got := MatchTags(ja); got != DefaultTag() {
		t.Fatalf("MatchTags(ja) = %v, want default", got)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.German
	if SupportedTags()[0] != language.English {
		t.Fatal("SupportedTags() exposed internal slice")
	}
}

func TestLocaleCode(t *testing.T) {
	t.Parallel()

	if got := LocaleCode(language.French); got != "fr" {
		t.Fatalf("LocaleCode(fr) = %q", got)
	}
	if got := LocaleCode(language.MustParse("en-US")); got != "en" {
		t.Fatalf("LocaleCode(en-US) = %q", got)
	}
}
