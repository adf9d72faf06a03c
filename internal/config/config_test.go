package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/isodatetime/datetime/format"
	"github.com/theory/isodatetime/datetime/parser"
	"github.com/theory/isodatetime/datetime/types"
	"github.com/theory/isodatetime/datetime/unit"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func intPtr(i int) *int { return &i }

func TestLoad(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		file string
		body string
		exp  *Config
	}{
		{
			test: "toml",
			file: "isodt.toml",
			body: "unit = \"ms\"\ncasting = \"safe\"\ntimezone = \"Asia/Tokyo\"\nlocal = true\n",
			exp:  &Config{Unit: "ms", Casting: "safe", TimeZone: "Asia/Tokyo", Local: true},
		},
		{
			test: "toml_offset",
			file: "isodt.TOML",
			body: "offset_minutes = -480\n",
			exp: &Config{
				Unit: "auto", Casting: "same_kind", TimeZone: "Local",
				OffsetMinutes: intPtr(-480),
			},
		},
		{
			test: "yaml",
			file: "isodt.yaml",
			body: "unit: second\ncasting: no\ntimezone: UTC\n",
			exp:  &Config{Unit: "second", Casting: "no", TimeZone: "UTC"},
		},
		{
			test: "yml_offset",
			file: "isodt.yml",
			body: "offset_minutes: 330\nlocal: false\n",
			exp: &Config{
				Unit: "auto", Casting: "same_kind", TimeZone: "Local",
				OffsetMinutes: intPtr(330),
			},
		},
		{
			test: "empty_toml",
			file: "empty.toml",
			body: "",
			exp:  Default(),
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(writeFile(t, tc.file, tc.body))
			require.NoError(t, err)
			assert.Equal(t, tc.exp, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		test string
		file string
		body string
		err  string
	}{
		{
			test: "unknown_ext",
			file: "isodt.json",
			body: "{}",
			err:  `config: unsupported config file type ".json"`,
		},
		{
			test: "bad_unit",
			file: "isodt.toml",
			body: "unit = \"fortnight\"\n",
			err:  `config: unit: unknown unit "fortnight", expected one of generic, Y, M, W, D, h, m, s, ms, us, ns, ps, fs, as`,
		},
		{
			test: "bad_casting",
			file: "isodt.yaml",
			body: "casting: sloppy\n",
			err:  `config: unit: unknown casting rule "sloppy", expected one of no, equiv, safe, same_kind, unsafe`,
		},
		{
			test: "bad_offset",
			file: "isodt.toml",
			body: "offset_minutes = 1440\n",
			err:  "config: offset_minutes 1440 out of range [-1439, 1439]",
		},
		{
			test: "bad_zone",
			file: "isodt.yaml",
			body: "timezone: Mars/Olympus_Mons\n",
			err:  "config: time zone: unknown time zone Mars/Olympus_Mons",
		},
	} {
		t.Run(tc.test, func(t *testing.T) {
			t.Parallel()

			cfg, err := Load(writeFile(t, tc.file, tc.body))
			require.ErrorIs(t, err, ErrConfig)
			require.EqualError(t, err, tc.err)
			assert.Nil(t, cfg)
		})
	}

	t.Run("syntax", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, "bad.toml", "unit = \n"))
		require.ErrorIs(t, err, ErrConfig)
		_, err = Load(writeFile(t, "bad.yaml", "unit: [\n"))
		require.ErrorIs(t, err, ErrConfig)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope.toml")
		_, err := Load(path)
		require.ErrorIs(t, err, ErrConfig)
		require.EqualError(t, err, "config: config file not found: "+path)
	})
}

func TestLoadFromEnv(t *testing.T) {
	path := writeFile(t, "env.toml", "unit = \"D\"\n")

	t.Setenv(EnvVar, "")
	cfg, err := LoadFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	t.Setenv(EnvVar, path)
	cfg, err = LoadFromEnv("")
	require.NoError(t, err)
	assert.Equal(t, "D", cfg.Unit)

	// An explicit path wins.
	other := writeFile(t, "other.yaml", "unit: h\n")
	cfg, err = LoadFromEnv(other)
	require.NoError(t, err)
	assert.Equal(t, "h", cfg.Unit)
}

func TestSettings(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	cfg := &Config{Unit: "ms", Casting: "safe", TimeZone: "UTC", Local: true}
	set, err := cfg.Settings()
	r.NoError(err)
	a.Equal(&Settings{
		Unit:     unit.Millisecond,
		Casting:  unit.Safe,
		Location: time.UTC,
		Local:    true,
	}, set)

	ctx := set.Context(context.Background())
	a.Equal(time.UTC, types.TZFromContext(ctx))

	res, err := parser.Parse(ctx, "2016-01-01T12:30:45.5", set.ParseOptions()...)
	r.NoError(err)
	a.Equal(unit.Millisecond, res.Unit)
	_, err = parser.Parse(ctx, "2016-01-01T12:30:45.5555", set.ParseOptions()...)
	r.ErrorIs(err, types.ErrCast)

	str, err := format.Format(ctx, res.Value, set.FormatOptions()...)
	r.NoError(err)
	a.Equal("2016-01-01T12:30:45.500+0000", str)

	cfg = Default()
	cfg.OffsetMinutes = intPtr(-90)
	set, err = cfg.Settings()
	r.NoError(err)
	a.True(set.Local)
	str, err = format.Format(ctx, res.Value, set.FormatOptions()...)
	r.NoError(err)
	a.Equal("2016-01-01T11:00:45.500-0130", str)
}
