package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("share coordinates", func(t *testing.T) {
		secret := big.NewInt(1234)

		shares, err := Split(secret, 3, 5)
		require.NoError(t, err)
		require.Len(t, shares, 5)

		for i, share := range shares {
			assert.Equal(t, int64(i+1), share.X.Int64())
			assert.Positive(t, share.Y.Sign())
		}
	})

	t.Run("secret is not stored in any share", func(t *testing.T) {
		secret := big.NewInt(99)

		shares, err := Split(secret, 2, 3)
		require.NoError(t, err)

		for _, share := range shares {
			assert.NotEqual(t, 0, share.Y.Cmp(secret))
		}
	})

	t.Run("splits are randomized", func(t *testing.T) {
		secret := big.NewInt(42)

		first, err := Split(secret, 3, 3)
		require.NoError(t, err)

		second, err := Split(secret, 3, 3)
		require.NoError(t, err)

		assert.NotEqual(t, first[0].Y.String(), second[0].Y.String())
	})

	t.Run("negative secret", func(t *testing.T) {
		secret := big.NewInt(-987654321)

		shares, err := Split(secret, 2, 4)
		require.NoError(t, err)

		recovered, err := Reconstruct(shares, 2)
		require.NoError(t, err)
		assert.Equal(t, "-987654321", recovered.String())
	})

	t.Run("input secret is copied", func(t *testing.T) {
		secret := big.NewInt(777)

		shares, err := Split(secret, 2, 2)
		require.NoError(t, err)

		secret.SetInt64(0)

		recovered, err := Reconstruct(shares, 2)
		require.NoError(t, err)
		assert.Equal(t, "777", recovered.String())
	})
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name      string
		secret    *big.Int
		threshold int
		total     int
		expected  error
	}{
		{
			name:      "nil secret",
			secret:    nil,
			threshold: 2,
			total:     3,
			expected:  ErrNilSecret,
		},
		{
			name:      "threshold below two",
			secret:    big.NewInt(1),
			threshold: 1,
			total:     3,
			expected:  ErrInvalidThreshold,
		},
		{
			name:      "total below threshold",
			secret:    big.NewInt(1),
			threshold: 4,
			total:     3,
			expected:  ErrInvalidTotal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := Split(tt.secret, tt.threshold, tt.total)
			assert.ErrorIs(t, err, tt.expected)
			assert.Nil(t, shares)
		})
	}
}

func TestSplitReconstructRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		threshold int
		total     int
	}{
		{name: "small secret", secret: "65", threshold: 2, total: 3},
		{name: "exact threshold", secret: "123456789", threshold: 5, total: 5},
		{name: "large secret", secret: "340282366920938463463374607431768211507", threshold: 3, total: 7},
		{name: "zero secret", secret: "0", threshold: 2, total: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, ok := new(big.Int).SetString(tt.secret, 10)
			require.True(t, ok)

			shares, err := Split(secret, tt.threshold, tt.total)
			require.NoError(t, err)
			require.Len(t, shares, tt.total)

			// Any threshold-sized subset recovers the secret.
			fromFirst, err := Reconstruct(shares[:tt.threshold], tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.secret, fromFirst.String())

			fromLast, err := Reconstruct(shares[tt.total-tt.threshold:], tt.threshold)
			require.NoError(t, err)
			assert.Equal(t, tt.secret, fromLast.String())
		})
	}
}

func FuzzSplitReconstruct(f *testing.F) {
	f.Add(int64(65), uint8(2), uint8(3))
	f.Add(int64(-42), uint8(3), uint8(5))
	f.Add(int64(0), uint8(2), uint8(2))

	f.Fuzz(func(t *testing.T, secret int64, threshold, total uint8) {
		k := int(threshold%5) + 2
		n := k + int(total%4)

		shares, err := Split(big.NewInt(secret), k, n)
		if err != nil {
			t.Fatalf("split failed: %v", err)
		}

		recovered, err := Reconstruct(shares[n-k:], k)
		if err != nil {
			t.Fatalf("reconstruct failed: %v", err)
		}

		if recovered.Int64() != secret {
			t.Fatalf("got %s, want %d", recovered, secret)
		}
	})
}

func BenchmarkSplit(b *testing.B) {
	secret := big.NewInt(1234567890)

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Split(secret, 3, 5)
	}
}

func BenchmarkReconstruct(b *testing.B) {
	shares, err := Split(big.NewInt(1234567890), 3, 5)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Reconstruct(shares, 3)
	}
}
