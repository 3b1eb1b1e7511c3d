package sharefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/vitalvas/secretkit"
	"github.com/vitalvas/secretkit/radix"
	"github.com/vitalvas/secretkit/shamir"
)

// Document is a parsed share document: the split parameters plus the
// encoded shares.
//
// The JSON form is one object holding a keys entry and one entry per
// share, keyed by the share index written in decimal:
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": 2, "value": "111" }
//	}
//
// The base of an entry may be a JSON number or a string holding a decimal
// integer; both forms appear in the wild.
type Document struct {
	// N is the total number of shares the secret was split into.
	N int
	// K is the minimum number of shares required for reconstruction.
	K int
	// Entries holds the encoded shares, sorted by index ascending.
	Entries []Entry
}

// Entry is one encoded share: its index and its value as a digit string
// in the stated base. The base range is checked on decode, not on parse.
type Entry struct {
	X     *big.Int
	Base  int
	Value string
}

// Parse decodes a share document from JSON.
func Parse(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("sharefile: parse document: %w", err)
	}

	keysRaw, ok := raw["keys"]
	if !ok {
		return nil, ErrMissingKeys
	}

	var keys struct {
		N *int `json:"n"`
		K *int `json:"k"`
	}

	if err := json.Unmarshal(keysRaw, &keys); err != nil {
		return nil, errors.Join(ErrInvalidKeys, err)
	}

	if keys.N == nil || keys.K == nil {
		return nil, fmt.Errorf("%w: both n and k are required", ErrMissingKeys)
	}

	if *keys.K < 1 || *keys.N < *keys.K {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidKeys, *keys.N, *keys.K)
	}

	doc := &Document{
		N:       *keys.N,
		K:       *keys.K,
		Entries: make([]Entry, 0, len(raw)-1),
	}

	for _, key := range secretkit.SortedKeys(raw) {
		if key == "keys" {
			continue
		}

		x, err := parseIndex(key)
		if err != nil {
			return nil, err
		}

		entry, err := parseEntry(x, raw[key])
		if err != nil {
			return nil, err
		}

		doc.Entries = append(doc.Entries, entry)
	}

	sort.Slice(doc.Entries, func(i, j int) bool {
		return doc.Entries[i].X.Cmp(doc.Entries[j].X) < 0
	})

	return doc, nil
}

// ParseReader decodes a share document from r.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("sharefile: read document: %w", err)
	}

	return Parse(data)
}

// ParseFile decodes a share document from the file at path.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sharefile: read document: %w", err)
	}

	return Parse(data)
}

// Shares decodes every entry value via radix.Decode and returns the shares
// in the document's index-ascending order.
func (d *Document) Shares() ([]*shamir.Share, error) {
	shares := make([]*shamir.Share, len(d.Entries))

	for i, entry := range d.Entries {
		y, err := radix.Decode(entry.Value, entry.Base)
		if err != nil {
			return nil, fmt.Errorf("sharefile: share %s: %w", entry.X, err)
		}

		shares[i] = &shamir.Share{
			X: new(big.Int).Set(entry.X),
			Y: y,
		}
	}

	return shares, nil
}

func parseIndex(key string) (*big.Int, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidShareIndex)
	}

	for _, r := range key {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidShareIndex, key)
		}
	}

	x, ok := new(big.Int).SetString(key, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidShareIndex, key)
	}

	return x, nil
}

func parseEntry(x *big.Int, data json.RawMessage) (Entry, error) {
	var raw struct {
		Base  baseValue `json:"base"`
		Value *string   `json:"value"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return Entry{}, errors.Join(fmt.Errorf("%w: share %s", ErrInvalidShareEntry, x), err)
	}

	if !raw.Base.set {
		return Entry{}, fmt.Errorf("%w: share %s: missing base", ErrInvalidShareEntry, x)
	}

	if raw.Value == nil || *raw.Value == "" {
		return Entry{}, fmt.Errorf("%w: share %s: missing value", ErrInvalidShareEntry, x)
	}

	return Entry{X: x, Base: raw.Base.value, Value: *raw.Value}, nil
}

// baseValue accepts a JSON number or a string holding a decimal integer.
type baseValue struct {
	value int
	set   bool
}

func (b *baseValue) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if len(s) > 1 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}

		s = unquoted
	}

	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", radix.ErrUnsupportedBase, s)
	}

	b.value = value
	b.set = true

	return nil
}

// Encode renders shares as a share document, with every value written in
// the given base. The entry form matches what Parse accepts, with the base
// emitted as a string.
func Encode(shares []*shamir.Share, threshold, base int) ([]byte, error) {
	if base < radix.MinBase || base > radix.MaxBase {
		return nil, fmt.Errorf("%w: %d", radix.ErrUnsupportedBase, base)
	}

	if threshold < 1 || len(shares) < threshold {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidKeys, len(shares), threshold)
	}

	doc := make(map[string]any, len(shares)+1)
	doc["keys"] = map[string]int{
		"n": len(shares),
		"k": threshold,
	}

	for _, share := range shares {
		if share.X.Sign() < 0 || share.Y.Sign() < 0 {
			return nil, fmt.Errorf("%w: share %s", ErrNegativeShare, share.X)
		}

		key := share.X.String()
		if _, exists := doc[key]; exists {
			return nil, fmt.Errorf("%w: share %s", shamir.ErrDuplicateShares, share.X)
		}

		doc[key] = map[string]string{
			"base":  strconv.Itoa(base),
			"value": share.Y.Text(base),
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}
