package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickproject/snipe/internal/prompt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "nested", FileName))
	require.NoError(t, err)
	return s
}

func writeFile(t *testing.T, s *Store, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0750))
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0600))
}

func readFile(t *testing.T, s *Store) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	return string(data)
}

func answer(yes bool) prompt.Confirmer {
	return prompt.ConfirmFunc(func(string) (bool, error) { return yes, nil })
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "Client Id", FormatKey("client_id"))
	assert.Equal(t, "Client Secret", FormatKey("client_secret"))
	assert.Equal(t, "Profile Id", FormatKey("profile_id"))
	assert.Equal(t, "Single", FormatKey("single"))
}

func TestDefaultContent(t *testing.T) {
	assert.Equal(t, "client_id:\nclient_secret:\nprofile_id:\n", string(DefaultContent()))
}

func TestEnsureExistsCreatesDefaultFile(t *testing.T) {
	s := newTestStore(t)

	created, err := s.EnsureExists()
	require.NoError(t, err)
	assert.True(t, created)

	file, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"client_id", "client_secret", "profile_id"}, file.Keys())
	for _, e := range file.Entries {
		assert.False(t, e.Set)
		assert.Equal(t, NotSetDisplay, e.Display())
	}

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestEnsureExistsIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: 42\n")

	created, err := s.EnsureExists()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "client_id: 42\n", readFile(t, s))
}

func TestLoadMissingFile(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Load()
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Op)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidFile(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "sequence", content: "- a\n- b\n"},
		{name: "nested value", content: "client_id:\n  nested: 1\n"},
		{name: "broken yaml", content: "client_id: [unterminated\n"},
		{name: "duplicate key", content: "client_id: 1\nclient_id: 2\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			writeFile(t, s, tc.content)

			_, err := s.Load()
			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "expected ParseError, got %v", err)
		})
	}
}

func TestLoadValues(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "# comment\nclient_id: 123\nclient_secret: ~\nprofile_id: \"\"\nextra: \"a: b\"\n")

	file, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"client_id", "client_secret", "profile_id", "extra"}, file.Keys())

	id, _ := file.Get("client_id")
	assert.Equal(t, Entry{Key: "client_id", Value: "123", Set: true}, id)
	secret, _ := file.Get("client_secret")
	assert.False(t, secret.Set)
	profile, _ := file.Get("profile_id")
	assert.False(t, profile.Set)
	extra, _ := file.Get("extra")
	assert.Equal(t, "a: b", extra.Value)
	assert.False(t, file.Has("missing"))
}

func TestLoadEmptyFile(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "")

	file, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, file.Entries)
}

func TestEntryDisplay(t *testing.T) {
	assert.Equal(t, NotSetDisplay, Entry{Key: "client_id"}.Display())
	assert.Equal(t, "abc", Entry{Key: "client_id", Value: "abc", Set: true}.Display())
	assert.Equal(t, RedactedDisplay, Entry{Key: "client_secret", Value: "hunter2", Set: true}.Display())
	assert.Equal(t, NotSetDisplay, Entry{Key: "client_secret"}.Display())
}

func TestSetRewritesOnlyMatchingLine(t *testing.T) {
	s := newTestStore(t)
	original := "# my settings\r\nclient_id_old:   keep  me\nclient_id: 1\nclient_secret:    spaced   # comment\nprofile_id: 7"
	writeFile(t, s, original)

	require.NoError(t, s.Set("client_id", "abc"))

	assert.Equal(t,
		"# my settings\r\nclient_id_old:   keep  me\nclient_id: abc\nclient_secret:    spaced   # comment\nprofile_id: 7",
		readFile(t, s))
}

func TestSetThenLoad(t *testing.T) {
	s := newTestStore(t)
	_, err := s.EnsureExists()
	require.NoError(t, err)

	require.NoError(t, s.Set("client_id", "abc"))

	file, err := s.Load()
	require.NoError(t, err)
	id, _ := file.Get("client_id")
	assert.Equal(t, "abc", id.Display())
	secret, _ := file.Get("client_secret")
	assert.Equal(t, NotSetDisplay, secret.Display())
	profile, _ := file.Get("profile_id")
	assert.Equal(t, NotSetDisplay, profile.Display())
}

func TestSetEmptyValueUnsets(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: abc\nprofile_id: 7\n")

	require.NoError(t, s.Set("client_id", ""))
	assert.Equal(t, "client_id:\nprofile_id: 7\n", readFile(t, s))

	file, err := s.Load()
	require.NoError(t, err)
	id, _ := file.Get("client_id")
	assert.Equal(t, NotSetDisplay, id.Display())
}

func TestSetValuesRoundTrip(t *testing.T) {
	values := []string{"plain", "123", "with space", "a: b", "# hash", "null", "~", " padded ", "quote\"d", "[x", "- item", "true"}

	for _, v := range values {
		t.Run(v, func(t *testing.T) {
			s := newTestStore(t)
			writeFile(t, s, string(DefaultContent()))

			require.NoError(t, s.Set("client_secret", v))

			file, err := s.Load()
			require.NoError(t, err)
			got, _ := file.Get("client_secret")
			assert.Equal(t, v, got.Value)
			assert.True(t, got.Set)
		})
	}
}

func TestSetUnknownKey(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: 1\n")

	err := s.Set("client", "x")
	var notFound *KeyNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "client", notFound.Key)
	assert.Equal(t, "client_id: 1\n", readFile(t, s))
}

func TestSetRefusesInvalidFile(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: [broken\n")

	err := s.Set("client_id", "x")
	var parseErr *ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "client_id: [broken\n", readFile(t, s))
}

func TestResetConfirmed(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: 1\nclient_secret: s\nprofile_id: 2\n")

	reset, err := s.Reset(answer(true))
	require.NoError(t, err)
	assert.True(t, reset)
	assert.Equal(t, string(DefaultContent()), readFile(t, s))
}

func TestResetDeclined(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: 1\n")

	reset, err := s.Reset(answer(false))
	require.NoError(t, err)
	assert.False(t, reset)
	assert.Equal(t, "client_id: 1\n", readFile(t, s))
}

func TestResetPromptError(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id: 1\n")

	_, err := s.Reset(prompt.ConfirmFunc(func(q string) (bool, error) {
		assert.Equal(t, ResetQuestion, q)
		return false, prompt.ErrNoInput
	}))
	assert.ErrorIs(t, err, prompt.ErrNoInput)
	assert.Equal(t, "client_id: 1\n", readFile(t, s))
}

func TestSetMultiLineValueThenLoad(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "client_id:\n  old\nclient_secret:\nprofile_id:\n")

	require.NoError(t, s.Set("client_id", "new"))
	assert.Equal(t, "client_id: new\nclient_secret:\nprofile_id:\n", readFile(t, s))

	file, err := s.Load()
	require.NoError(t, err)
	id, _ := file.Get("client_id")
	assert.Equal(t, "new", id.Display())
}

func TestSetQuotedKeyThenLoad(t *testing.T) {
	s := newTestStore(t)
	writeFile(t, s, "\"client_id\": 1\nclient_secret:\nprofile_id:\n")

	file, err := s.Load()
	require.NoError(t, err)
	require.True(t, file.Has("client_id"))

	require.NoError(t, s.Set("client_id", "2"))
	file, err = s.Load()
	require.NoError(t, err)
	id, _ := file.Get("client_id")
	assert.Equal(t, "2", id.Value)
}
