package linter

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOptions = []Option{
	IntOption("max-spaces-before", 0, "before"),
	IntOption("max-spaces-after", 1, "after"),
	BoolOption("present", true, "present"),
	EnumOption("style", "plain", []string{"plain", "quoted"}, "style"),
}

func TestNewRuleConfig_Defaults(t *testing.T) {
	conf, err := NewRuleConfig("test", testOptions, SeverityWarning, nil)
	require.NoError(t, err)

	assert.Equal(t, "test", conf.Rule())
	assert.Equal(t, SeverityWarning, conf.Severity())
	assert.Equal(t, 0, conf.Int("max-spaces-before"))
	assert.Equal(t, 1, conf.Int("max-spaces-after"))
	assert.True(t, conf.Bool("present"))
	assert.Equal(t, "plain", conf.String("style"))
}

func TestNewRuleConfig_Overrides(t *testing.T) {
	conf, err := NewRuleConfig("test", testOptions, SeverityError, map[string]interface{}{
		"max-spaces-after":  -1,
		"max-spaces-before": float64(3),
		"present":           false,
		"style":             "quoted",
	})
	require.NoError(t, err)

	assert.Equal(t, Disabled, conf.Int("max-spaces-after"))
	assert.Equal(t, 3, conf.Int("max-spaces-before"))
	assert.False(t, conf.Bool("present"))
	assert.Equal(t, "quoted", conf.String("style"))
}

func TestNewRuleConfig_Int32Bound(t *testing.T) {
	for _, v := range []interface{}{int(math.MaxInt32), int64(math.MaxInt32), uint64(math.MaxInt32), float64(math.MaxInt32)} {
		conf, err := NewRuleConfig("test", testOptions, SeverityError, map[string]interface{}{"max-spaces-after": v})
		require.NoError(t, err, "%T", v)
		assert.Equal(t, math.MaxInt32, conf.Int("max-spaces-after"))
	}
}

func TestOptionType_String(t *testing.T) {
	assert.Equal(t, "int", OptionInt.String())
	assert.Equal(t, "enum", OptionEnum.String())
	assert.Equal(t, "OptionType(7)", OptionType(7).String())
	assert.Equal(t, "OptionType(-1)", OptionType(-1).String())
}

func TestNewRuleConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]interface{}
		option    string
	}{
		{"unknown option", map[string]interface{}{"max-spaces": 1}, "max-spaces"},
		{"below disabled", map[string]interface{}{"max-spaces-after": -2}, "max-spaces-after"},
		{"not an integer", map[string]interface{}{"max-spaces-after": "one"}, "max-spaces-after"},
		{"fractional", map[string]interface{}{"max-spaces-after": 1.5}, "max-spaces-after"},
		{"int above int32", map[string]interface{}{"max-spaces-after": int64(math.MaxInt32) + 1}, "max-spaces-after"},
		{"uint above int32", map[string]interface{}{"max-spaces-after": uint64(math.MaxInt32) + 1}, "max-spaces-after"},
		{"float above int32", map[string]interface{}{"max-spaces-after": float64(math.MaxInt32) * 2}, "max-spaces-after"},
		{"float far below", map[string]interface{}{"max-spaces-after": -1e300}, "max-spaces-after"},
		{"not a bool", map[string]interface{}{"present": "yes"}, "present"},
		{"bad choice", map[string]interface{}{"style": "folded"}, "style"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRuleConfig("test", testOptions, SeverityError, tt.overrides)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)

			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, "test", cfgErr.Rule)
			assert.Equal(t, tt.option, cfgErr.Option)
		})
	}
}

func TestRuleConfig_UnregisteredOptionPanics(t *testing.T) {
	conf, err := NewRuleConfig("test", testOptions, SeverityError, nil)
	require.NoError(t, err)

	defer func() {
		rec := recover()
		require.NotNil(t, rec)
		err, ok := rec.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnregisteredOption))
	}()
	conf.Int("max-spaces-inside")
}

func TestRuleConfig_WrongTypePanics(t *testing.T) {
	conf, err := NewRuleConfig("test", testOptions, SeverityError, nil)
	require.NoError(t, err)

	assert.Panics(t, func() { conf.Bool("max-spaces-after") })
	assert.Panics(t, func() { conf.String("present") })
}

func TestRuleConfig_ValuesIsCopy(t *testing.T) {
	conf, err := NewRuleConfig("test", testOptions, SeverityError, nil)
	require.NoError(t, err)

	values := conf.Values()
	values["max-spaces-after"] = 99
	assert.Equal(t, 1, conf.Int("max-spaces-after"))
}
