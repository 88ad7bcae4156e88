package langmeta

import "testing"

func TestFlagFromRegion(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "us", want: "\U0001F1FA\U0001F1F8"},
		{in: "BR", want: "\U0001F1E7\U0001F1F7"},
		{in: "USA", want: ""},
		{in: "1A", want: ""},
		{in: "419", want: ""},
		{in: "ZZ", want: ""},
	}

	for _, tc := range cases {
		if got := flagFromRegion(tc.in); got != tc.want {
			t.Fatalf("flagFromRegion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Run("language with region", func(t *testing.T) {
		got := Resolve("es_ES")
		if got.Name == "" || got.Name == "es_ES" {
			t.Fatalf("Resolve(es_ES).Name = %q, want a language name", got.Name)
		}
		if got.Flag != "\U0001F1EA\U0001F1F8" {
			t.Fatalf("Resolve(es_ES).Flag = %q, want Spanish flag", got.Flag)
		}
	})

	t.Run("base language has no flag", func(t *testing.T) {
		got := Resolve("fr")
		if got.Name != "français" {
			t.Fatalf("Resolve(fr).Name = %q, want %q", got.Name, "français")
		}
		if got.Flag != "" {
			t.Fatalf("Resolve(fr).Flag = %q, want empty", got.Flag)
		}
	})

	t.Run("encoding suffix is ignored", func(t *testing.T) {
		if got := Resolve("de_DE.UTF-8"); got.Flag != "\U0001F1E9\U0001F1EA" {
			t.Fatalf("Resolve(de_DE.UTF-8).Flag = %q, want German flag", got.Flag)
		}
	})

	t.Run("modifier is ignored", func(t *testing.T) {
		if got := Resolve("sr_RS@latin"); got.Flag != "\U0001F1F7\U0001F1F8" {
			t.Fatalf("Resolve(sr_RS@latin).Flag = %q, want Serbian flag", got.Flag)
		}
	})

	t.Run("empty passthrough", func(t *testing.T) {
		if got := Resolve(""); got != (Meta{}) {
			t.Fatalf("Resolve(\"\") = %#v, want zero Meta", got)
		}
	})

	t.Run("malformed passthrough", func(t *testing.T) {
		got := Resolve("not a locale")
		if got.Name != "not a locale" || got.Flag != "" {
			t.Fatalf("unexpected result: %#v", got)
		}
	})
}
