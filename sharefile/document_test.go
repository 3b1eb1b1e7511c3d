package sharefile

import (
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/secretkit/radix"
	"github.com/vitalvas/secretkit/shamir"
)

var bigComparer = cmp.Comparer(func(a, b *big.Int) bool {
	return a.Cmp(b) == 0
})

func TestParse(t *testing.T) {
	t.Run("numeric bases", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 4, "k": 3},
			"1": {"base": 10, "value": "1"},
			"2": {"base": 2, "value": "111"},
			"3": {"base": 10, "value": "12"},
			"6": {"base": 4, "value": "213"}
		}`))
		require.NoError(t, err)

		expected := &Document{
			N: 4,
			K: 3,
			Entries: []Entry{
				{X: big.NewInt(1), Base: 10, Value: "1"},
				{X: big.NewInt(2), Base: 2, Value: "111"},
				{X: big.NewInt(3), Base: 10, Value: "12"},
				{X: big.NewInt(6), Base: 4, Value: "213"},
			},
		}

		assert.Empty(t, cmp.Diff(expected, doc, bigComparer))
	})

	t.Run("string bases", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 2, "k": 2},
			"1": {"base": "16", "value": "ff"},
			"2": {"base": " 8 ", "value": "17"}
		}`))
		require.NoError(t, err)

		require.Len(t, doc.Entries, 2)
		assert.Equal(t, 16, doc.Entries[0].Base)
		assert.Equal(t, 8, doc.Entries[1].Base)
	})

	t.Run("entries are sorted by index", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"10": {"base": 10, "value": "7"},
			"2": {"base": 10, "value": "3"},
			"keys": {"n": 3, "k": 2},
			"1": {"base": 10, "value": "2"}
		}`))
		require.NoError(t, err)

		indexes := make([]int64, 0, len(doc.Entries))
		for _, entry := range doc.Entries {
			indexes = append(indexes, entry.X.Int64())
		}

		assert.Equal(t, []int64{1, 2, 10}, indexes)
	})

	t.Run("huge index", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 1, "k": 1},
			"123456789012345678901234567890": {"base": 10, "value": "5"}
		}`))
		require.NoError(t, err)

		require.Len(t, doc.Entries, 1)
		assert.Equal(t, "123456789012345678901234567890", doc.Entries[0].X.String())
	})

	t.Run("no share entries", func(t *testing.T) {
		doc, err := Parse([]byte(`{"keys": {"n": 3, "k": 2}}`))
		require.NoError(t, err)
		assert.Empty(t, doc.Entries)
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected error
	}{
		{
			name:     "missing keys object",
			data:     `{"1": {"base": 10, "value": "1"}}`,
			expected: ErrMissingKeys,
		},
		{
			name:     "missing n",
			data:     `{"keys": {"k": 2}}`,
			expected: ErrMissingKeys,
		},
		{
			name:     "missing k",
			data:     `{"keys": {"n": 3}}`,
			expected: ErrMissingKeys,
		},
		{
			name:     "k below one",
			data:     `{"keys": {"n": 3, "k": 0}}`,
			expected: ErrInvalidKeys,
		},
		{
			name:     "n below k",
			data:     `{"keys": {"n": 2, "k": 3}}`,
			expected: ErrInvalidKeys,
		},
		{
			name:     "keys values must be numbers",
			data:     `{"keys": {"n": "3", "k": 2}}`,
			expected: ErrInvalidKeys,
		},
		{
			name:     "non-numeric index",
			data:     `{"keys": {"n": 1, "k": 1}, "x1": {"base": 10, "value": "1"}}`,
			expected: ErrInvalidShareIndex,
		},
		{
			name:     "negative index",
			data:     `{"keys": {"n": 1, "k": 1}, "-1": {"base": 10, "value": "1"}}`,
			expected: ErrInvalidShareIndex,
		},
		{
			name:     "fractional index",
			data:     `{"keys": {"n": 1, "k": 1}, "1.5": {"base": 10, "value": "1"}}`,
			expected: ErrInvalidShareIndex,
		},
		{
			name:     "entry is not an object",
			data:     `{"keys": {"n": 1, "k": 1}, "1": 5}`,
			expected: ErrInvalidShareEntry,
		},
		{
			name:     "missing base",
			data:     `{"keys": {"n": 1, "k": 1}, "1": {"value": "1"}}`,
			expected: ErrInvalidShareEntry,
		},
		{
			name:     "null base",
			data:     `{"keys": {"n": 1, "k": 1}, "1": {"base": null, "value": "1"}}`,
			expected: ErrInvalidShareEntry,
		},
		{
			name:     "missing value",
			data:     `{"keys": {"n": 1, "k": 1}, "1": {"base": 10}}`,
			expected: ErrInvalidShareEntry,
		},
		{
			name:     "empty value",
			data:     `{"keys": {"n": 1, "k": 1}, "1": {"base": 10, "value": ""}}`,
			expected: ErrInvalidShareEntry,
		},
		{
			name:     "non-integer base",
			data:     `{"keys": {"n": 1, "k": 1}, "1": {"base": "ten", "value": "1"}}`,
			expected: radix.ErrUnsupportedBase,
		},
		{
			name:     "fractional base",
			data:     `{"keys": {"n": 1, "k": 1}, "1": {"base": 16.5, "value": "1"}}`,
			expected: radix.ErrUnsupportedBase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, doc)
		})
	}

	t.Run("not json", func(t *testing.T) {
		_, err := Parse([]byte("not a document"))
		assert.Error(t, err)
	})
}

func TestDocumentShares(t *testing.T) {
	t.Run("decodes values in their bases", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 4, "k": 3},
			"1": {"base": 10, "value": "1"},
			"2": {"base": 2, "value": "111"},
			"3": {"base": 10, "value": "12"},
			"6": {"base": 4, "value": "213"}
		}`))
		require.NoError(t, err)

		shares, err := doc.Shares()
		require.NoError(t, err)
		require.Len(t, shares, 4)

		assert.True(t, shares[0].Equal(&shamir.Share{X: big.NewInt(1), Y: big.NewInt(1)}))
		assert.True(t, shares[1].Equal(&shamir.Share{X: big.NewInt(2), Y: big.NewInt(7)}))
		assert.True(t, shares[2].Equal(&shamir.Share{X: big.NewInt(3), Y: big.NewInt(12)}))
		assert.True(t, shares[3].Equal(&shamir.Share{X: big.NewInt(6), Y: big.NewInt(39)}))
	})

	t.Run("invalid digit surfaces from decode", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 1, "k": 1},
			"1": {"base": 2, "value": "102"}
		}`))
		require.NoError(t, err)

		_, err = doc.Shares()
		assert.ErrorIs(t, err, radix.ErrInvalidDigit)
	})

	t.Run("base range surfaces from decode", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 1, "k": 1},
			"1": {"base": 37, "value": "1"}
		}`))
		require.NoError(t, err)

		_, err = doc.Shares()
		assert.ErrorIs(t, err, radix.ErrUnsupportedBase)
	})
}

func TestParseReconstruct(t *testing.T) {
	// Points (1,1), (2,7), (3,12) define -x^2/2 + 15x/2 - 6. The constant
	// term is integral even though the higher coefficients are not.
	t.Run("secret with fractional polynomial", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 4, "k": 3},
			"1": {"base": "10", "value": "1"},
			"2": {"base": "2", "value": "111"},
			"3": {"base": "10", "value": "12"},
			"6": {"base": "4", "value": "213"}
		}`))
		require.NoError(t, err)

		shares, err := doc.Shares()
		require.NoError(t, err)

		secret, err := shamir.Reconstruct(shares, doc.K)
		require.NoError(t, err)
		assert.Equal(t, "-6", secret.String())

		// The fourth share does not lie on that polynomial.
		ok, err := shamir.VerifyShares(shares, doc.K)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("mutually consistent document", func(t *testing.T) {
		doc, err := Parse([]byte(`{
			"keys": {"n": 4, "k": 3},
			"1": {"base": 10, "value": "4"},
			"2": {"base": 2, "value": "111"},
			"3": {"base": 10, "value": "12"},
			"6": {"base": 4, "value": "213"}
		}`))
		require.NoError(t, err)

		shares, err := doc.Shares()
		require.NoError(t, err)

		secret, err := shamir.Reconstruct(shares, doc.K)
		require.NoError(t, err)
		assert.Equal(t, "3", secret.String())

		ok, err := shamir.VerifyShares(shares, doc.K)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shares.json")

	data := `{"keys": {"n": 2, "k": 2}, "1": {"base": 10, "value": "3"}, "2": {"base": 10, "value": "5"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	doc, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.N)
	assert.Len(t, doc.Entries, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseReader(t *testing.T) {
	doc, err := ParseReader(strings.NewReader(`{"keys": {"n": 1, "k": 1}, "1": {"base": 10, "value": "9"}}`))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.K)
}

func TestEncode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		secret := big.NewInt(1234567890)

		shares, err := shamir.Split(secret, 3, 5)
		require.NoError(t, err)

		data, err := Encode(shares, 3, 36)
		require.NoError(t, err)

		doc, err := Parse(data)
		require.NoError(t, err)
		assert.Equal(t, 5, doc.N)
		assert.Equal(t, 3, doc.K)

		decoded, err := doc.Shares()
		require.NoError(t, err)

		recovered, err := shamir.Reconstruct(decoded, doc.K)
		require.NoError(t, err)
		assert.Equal(t, secret.String(), recovered.String())
	})

	t.Run("unsupported base", func(t *testing.T) {
		shares := []*shamir.Share{{X: big.NewInt(1), Y: big.NewInt(2)}}

		_, err := Encode(shares, 1, 1)
		assert.ErrorIs(t, err, radix.ErrUnsupportedBase)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		shares := []*shamir.Share{{X: big.NewInt(1), Y: big.NewInt(2)}}

		_, err := Encode(shares, 2, 10)
		assert.ErrorIs(t, err, ErrInvalidKeys)

		_, err = Encode(shares, 0, 10)
		assert.ErrorIs(t, err, ErrInvalidKeys)
	})

	t.Run("negative value", func(t *testing.T) {
		shares := []*shamir.Share{{X: big.NewInt(1), Y: big.NewInt(-2)}}

		_, err := Encode(shares, 1, 10)
		assert.ErrorIs(t, err, ErrNegativeShare)
	})

	t.Run("duplicate index", func(t *testing.T) {
		shares := []*shamir.Share{
			{X: big.NewInt(1), Y: big.NewInt(2)},
			{X: big.NewInt(1), Y: big.NewInt(3)},
		}

		_, err := Encode(shares, 1, 10)
		assert.ErrorIs(t, err, shamir.ErrDuplicateShares)
	})
}
