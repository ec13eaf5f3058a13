package catalog

import (
	"strings"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasSupportedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	got := bundle.Locales()
	if strings.Join(got, ",") != "en,fr" {
		t.Fatalf("Locales() = %v, want [en fr]", got)
	}
}

func TestEmbeddedLocalesCoverBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	base := bundle.locales[BaseLocale].Messages
	keys := make([]string, 0, len(base))
	for key := range base {
		keys = append(keys, key)
	}
	if missing := bundle.MissingKeys(keys); len(missing) != 0 {
		t.Fatalf("MissingKeys() = %v, want none", missing)
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en/nav.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"nav\"\nmessages:\n  \"nav.home\": \"Home\"\n  \"nav.about\": \"About\"\n")},
		"locales/fr/nav.yaml": {Data: []byte("locale: \"fr\"\nnamespace: \"nav\"\nmessages:\n  \"nav.home\": \"Accueil\"\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}

	if got, ok := bundle.Message("fr", "nav.home"); !ok || got != "Accueil" {
		t.Fatalf("Message(fr, nav.home) = %q, %v", got, ok)
	}
	if got, ok := bundle.Message("fr", "nav.about"); !ok || got != "About" {
		t.Fatalf("Message(fr, nav.about) = %q, %v, want base fallback", got, ok)
	}
	if _, ok := bundle.Message("en", "nav.unknown"); ok {
		t.Fatal("expected unknown key to be reported missing")
	}

	missing := bundle.MissingKeys([]string{"nav.home", "nav.about"})
	if len(missing) != 1 || strings.Join(missing["fr"], ",") != "nav.about" {
		t.Fatalf("MissingKeys() = %v, want fr:[nav.about]", missing)
	}
}

func TestBuilderBacksPrinters(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en/layout.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"layout\"\nmessages:\n  \"layout.copyright\": \"(c) %d Bot\"\n  \"layout.title\": \"Title\"\n")},
		"locales/fr/layout.yaml": {Data: []byte("locale: \"fr\"\nnamespace: \"layout\"\nmessages:\n  \"layout.title\": \"Titre\"\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	builder, err := bundle.Builder()
	if err != nil {
		t.Fatalf("Builder() error = %v", err)
	}

	fr := message.NewPrinter(language.French, message.Catalog(builder))
	if got := fr.Sprintf("layout.title"); got != "Titre" {
		t.Fatalf("fr title = %q, want %q", got, "Titre")
	}
	en := message.NewPrinter(language.English, message.Catalog(builder))
	if got := en.Sprintf("layout.copyright", 2025); got != "(c) 2025 Bot" {
		t.Fatalf("en copyright = %q, want %q", got, "(c) 2025 Bot")
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "empty",
			fs:   fstest.MapFS{},
		},
		{
			name: "missing base locale",
			fs: fstest.MapFS{
				"locales/fr/nav.yaml": {Data: []byte("locale: \"fr\"\nnamespace: \"nav\"\nmessages:\n  \"nav.home\": \"Accueil\"\n")},
			},
		},
		{
			name: "locale mismatch",
			fs: fstest.MapFS{
				"locales/en/nav.yaml": {Data: []byte("locale: \"fr\"\nnamespace: \"nav\"\nmessages:\n  \"nav.home\": \"Home\"\n")},
			},
		},
		{
			name: "namespace mismatch",
			fs: fstest.MapFS{
				"locales/en/nav.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"home\"\nmessages:\n  \"home.title\": \"Home\"\n")},
			},
		},
		{
			name: "key outside namespace",
			fs: fstest.MapFS{
				"locales/en/nav.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"nav\"\nmessages:\n  \"home.title\": \"Home\"\n")},
			},
		},
		{
			name: "duplicate key",
			fs: fstest.MapFS{
				"locales/en/nav.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"nav\"\nmessages:\n  \"nav.home\": \"Home\"\n  \"nav.home\": \"Again\"\n")},
			},
		},
		{
			name: "unquoted value",
			fs: fstest.MapFS{
				"locales/en/nav.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"nav\"\nmessages:\n  \"nav.home\": Home\n")},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(tc.fs); err == nil {
				t.Fatal("expected load error")
			}
		})
	}
}

func TestParseCatalogFileHandlesEscapes(t *testing.T) {
	t.Parallel()

	parsed, err := parseCatalogFile([]byte("# comment\nlocale: \"en\"\nnamespace: \"about\"\nmessages:\n  \"about.quote\": \"say \\\"hi\\\"\\nbye\"\n"))
	if err != nil {
		t.Fatalf("parseCatalogFile() error = %v", err)
	}
	if got := parsed.Messages["about.quote"]; got != "say \"hi\"\nbye" {
		t.Fatalf("about.quote = %q", got)
	}
}

func TestNamespaceMessagesReturnsCopy(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded() error = %v", err)
	}
	nav := bundle.NamespaceMessages("en", "nav")
	if nav["nav.home"] != "Home" {
		t.Fatalf("nav.home = %q, want Home", nav["nav.home"])
	}
	nav["nav.home"] = "changed"
	if got, _ := bundle.Message("en", "nav.home"); got != "Home" {
		t.Fatalf("bundle mutated through namespace copy: %q", got)
	}
}
