package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/canister-counter/internal/manifest"
)

func parse(t *testing.T, doc string) manifest.Value {
	t.Helper()
	v, err := manifest.Parse([]byte(doc))
	require.NoError(t, err)
	return v
}

func TestAnalyze_Web3Disk(t *testing.T) {
	root := parse(t, `{"canisters": {
		"web3disk": {"type": "custom", "candid": "src/distributed/web3disk/web3disk.did"},
		"web3disk_service_backend": {"type": "motoko", "main": "src/web3disk_service_backend/src/main.mo"},
		"internet-identity": {"type": "pull", "id": "rdmx6-jaaaa-aaaaa-aaadq-cai"}
	}}`)

	res, err := Analyze(root)

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, Tally{"custom": 1, "motoko": 1, "pull": 1}, res.Tally)
	assert.Equal(t, []Entry{
		{Name: "internet-identity", Type: "pull"},
		{Name: "web3disk", Type: "custom"},
		{Name: "web3disk_service_backend", Type: "motoko"},
	}, res.Entries)
}

func TestAnalyze_MissingType(t *testing.T) {
	res, err := Analyze(parse(t, `{"canisters": {"foo": {}}}`))

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, Tally{"unknown": 1}, res.Tally)
	assert.Equal(t, []Entry{{Name: "foo", Type: "unknown"}}, res.Entries)
}

func TestAnalyze_UnknownFallback(t *testing.T) {
	tests := []struct {
		name string
		def  string
	}{
		{"absent", `{}`},
		{"null", `{"type": null}`},
		{"number", `{"type": 7}`},
		{"bool", `{"type": true}`},
		{"array", `{"type": ["motoko"]}`},
		{"object", `{"type": {"name": "motoko"}}`},
		{"definition is a string", `"motoko"`},
		{"definition is null", `null`},
		{"definition is an array", `[{"type": "motoko"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(parse(t, `{"canisters": {"c": `+tt.def+`}}`))
			require.NoError(t, err)
			assert.Equal(t, Tally{UnknownType: 1}, res.Tally)
		})
	}
}

func TestAnalyze_EmptyStringTypeIsKept(t *testing.T) {
	res, err := Analyze(parse(t, `{"canisters": {"c": {"type": ""}}}`))

	require.NoError(t, err)
	assert.Equal(t, Tally{"": 1}, res.Tally)
}

func TestAnalyze_Empty(t *testing.T) {
	res, err := Analyze(parse(t, `{"canisters": {}}`))

	require.NoError(t, err)
	assert.Equal(t, 0, res.Total)
	assert.NotNil(t, res.Tally)
	assert.Empty(t, res.Tally)
	assert.Empty(t, res.Entries)
}

func TestAnalyze_MissingField(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"absent", `{"version": 1}`},
		{"null", `{"canisters": null}`},
		{"array", `{"canisters": [{"type": "motoko"}]}`},
		{"string", `{"canisters": "backend"}`},
		{"number", `{"canisters": 3}`},
		{"document is an array", `[{"canisters": {}}]`},
		{"document is a scalar", `"canisters"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Analyze(parse(t, tt.doc))

			assert.Nil(t, res)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, "canisters", missing.Field)
			assert.Equal(t, "no 'canisters' field found in dfx.json", err.Error())
		})
	}
}

func TestAnalyze_Invariants(t *testing.T) {
	docs := []string{
		`{"canisters": {}}`,
		`{"canisters": {"a": {"type": "motoko"}}}`,
		`{"canisters": {"a": {"type": "motoko"}, "b": {"type": "motoko"}, "c": {}}}`,
		`{"canisters": {"a": {"type": "rust"}, "b": {"type": "assets"}, "c": {"type": "custom"}, "d": {"type": "pull"}}}`,
		`{"canisters": {"a": {"type": 1}, "b": {"type": null}, "c": {"type": "rust"}, "d": {"type": "rust"}, "e": {}}}`,
	}

	for _, doc := range docs {
		res, err := Analyze(parse(t, doc))
		require.NoError(t, err)

		assert.Equal(t, res.Total, res.Tally.Sum(), doc)
		assert.Len(t, res.Entries, res.Total, doc)
		assert.LessOrEqual(t, len(res.Tally), res.Total, doc)

		counted := make(Tally)
		for _, e := range res.Entries {
			counted[e.Type]++
		}
		assert.Equal(t, res.Tally, counted, doc)
	}
}

func TestAnalyze_DoesNotMutateInput(t *testing.T) {
	root := parse(t, `{"canisters": {"b": {"type": "motoko"}, "a": {}}}`)

	_, err := Analyze(root)
	require.NoError(t, err)

	canisters := root.Field("canisters")
	assert.Equal(t, 2, canisters.Len())
	assert.True(t, canisters.Field("a").Field("type").IsNull())
	_, ok := canisters.Field("a").Lookup("type")
	assert.False(t, ok)
}

func TestTally(t *testing.T) {
	tally := Tally{"pull": 2, "custom": 1, "motoko": 4}

	assert.Equal(t, []string{"custom", "motoko", "pull"}, tally.Labels())
	assert.Equal(t, 7, tally.Sum())
	assert.Empty(t, Tally{}.Labels())
	assert.Equal(t, 0, Tally{}.Sum())
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "assets", TypeOf(parse(t, `{"type": "assets"}`)))
	assert.Equal(t, UnknownType, TypeOf(parse(t, `{"type": false}`)))
	assert.Equal(t, UnknownType, TypeOf(manifest.Value{}))
}
