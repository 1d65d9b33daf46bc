package roster

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olehluchkiv/kennel/internal/animal"
)

func TestParse_TwoEntries(t *testing.T) {
	dogs, err := Parse([]byte(`[{"name":"Rex"},{"name":"Fido"}]`))
	require.NoError(t, err)
	require.Len(t, dogs, 2)

	if diff := cmp.Diff([]string{"Rex", "Fido"}, Names(dogs)); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	for _, d := range dogs {
		assert.Equal(t, "dog-secret", d.Secret())
	}
}

func TestParse_EmptyArray(t *testing.T) {
	dogs, err := Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, dogs)
}

func TestParse_InvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding roster")
}

func TestParse_NamesAreBounded(t *testing.T) {
	long := strings.Repeat("a", 100)
	dogs, err := Parse([]byte(`[{"name":"` + long + `"}]`))
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Len(t, dogs[0].Name(), animal.NameCapacity)
}

func TestLoad_RoundTripThroughFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"Rex"}]`), 0o644))

	dogs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "Rex", dogs[0].Name())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading roster")
}

func TestMarshal_PreservesOrder(t *testing.T) {
	dogs := []*animal.Dog{animal.NewDog("Rex"), animal.NewDog("Fido")}
	data, err := Marshal(dogs)
	require.NoError(t, err)

	reparsed, err := Parse(data)
	require.NoError(t, err)
	if diff := cmp.Diff(Names(dogs), Names(reparsed)); diff != "" {
		t.Errorf("roster order changed (-want +got):\n%s", diff)
	}
}

func TestEmitAll_ExactLines(t *testing.T) {
	dogs := []*animal.Dog{animal.NewDog("Rex"), animal.NewDog("Fido")}

	var buf bytes.Buffer
	EmitAll(&buf, dogs)

	want := "Rex says: woof!\n" +
		"[Dog] Rex (species=Canis familiaris)\n" +
		"Fido says: woof!\n" +
		"[Dog] Fido (species=Canis familiaris)\n"
	assert.Equal(t, want, buf.String())
}
