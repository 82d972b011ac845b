package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupDetectFlags(t *testing.T) {
	fs, flags := SetupDetectFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatText, flags.Format)
		assert.False(t, flags.StrictScreaming)
	})

	t.Run("parse flags", func(t *testing.T) {
		require.NoError(t, fs.Parse([]string{"-format", "json", "-strict-screaming", "a_b", "c-d"}))
		assert.Equal(t, FormatJSON, flags.Format)
		assert.True(t, flags.StrictScreaming)
		assert.Equal(t, []string{"a_b", "c-d"}, fs.Args())
	})
}

func TestHandleDetect_NoArgs(t *testing.T) {
	err := HandleDetect([]string{})
	assert.Error(t, err)
}

func TestHandleDetect_Help(t *testing.T) {
	err := HandleDetect([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleDetect_InvalidFormat(t *testing.T) {
	err := HandleDetect([]string{"-format", "xml", "someWord"})
	assert.Error(t, err)
}

func TestHandleDetect_Text(t *testing.T) {
	buf := captureStdout(t)

	require.NoError(t, HandleDetect([]string{"someCamelCase", "MAX_SIZE", "some/path"}))
	assert.Equal(t,
		"someCamelCase\tcamel\tsome camel case\n"+
			"MAX_SIZE\tscreaming_snake\tmax size\n"+
			"some/path\tpath\tsome path\n",
		buf.String())
}

func TestHandleDetect_Unclassified(t *testing.T) {
	buf := captureStdout(t)

	err := HandleDetect([]string{"some_word", "Not Usable!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 identifier(s) did not classify")
	assert.Equal(t, "some_word\tsnake\tsome word\nNot Usable!\tunclassified\n", buf.String())
}

func TestHandleDetect_StrictScreaming(t *testing.T) {
	captureStdout(t)

	assert.NoError(t, HandleDetect([]string{"WORD"}))
	assert.Error(t, HandleDetect([]string{"-strict-screaming", "WORD"}))
}

func TestHandleDetect_JSON(t *testing.T) {
	buf := captureStdout(t)

	require.NoError(t, HandleDetect([]string{"-format", "json", "Some-Title-Dash"}))

	var results []DetectResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	assert.Equal(t, []DetectResult{{
		Identifier: "Some-Title-Dash",
		Classified: true,
		Style:      "title_dash",
		Parts:      []string{"some", "title", "dash"},
	}}, results)
}
