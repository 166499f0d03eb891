package uri

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ghettovoice/gouri/internal/util"
)

// Pairs is a decoded query: key/value pairs in source order.
// Duplicate keys are kept.
type Pairs []Pair

// QueryOptions configures query decoding and encoding.
type QueryOptions struct {
	// PairSep separates pairs. Zero selects '&'.
	PairSep byte
	// KVSep separates a key from its value. Zero selects '='.
	KVSep byte
	// Sort sorts decoded pairs with [SortQuery].
	Sort bool
}

func (o *QueryOptions) seps() (pair, kv byte) {
	pair, kv = '&', '='
	if o == nil {
		return pair, kv
	}
	if o.PairSep != 0 {
		pair = o.PairSep
	}
	if o.KVSep != 0 {
		kv = o.KVSep
	}
	return pair, kv
}

// DecodeQuery splits query into pairs.
// A segment without the key/value separator yields a pair with an empty value.
// Empty segments, as produced by leading, trailing or doubled pair
// separators, are skipped rather than decoded as empty pairs.
func DecodeQuery(query string, opts *QueryOptions) Pairs {
	if query == "" {
		return nil
	}

	ps, kvs := opts.seps()
	res := make(Pairs, 0, strings.Count(query, string([]byte{ps}))+1)
	for query != "" {
		var seg string
		if i := strings.IndexByte(query, ps); i >= 0 {
			seg, query = query[:i], query[i+1:]
		} else {
			seg, query = query, ""
		}
		if seg == "" {
			continue
		}
		if i := strings.IndexByte(seg, kvs); i >= 0 {
			res = append(res, Pair{seg[:i], seg[i+1:]})
		} else {
			res = append(res, Pair{Key: seg})
		}
	}
	if opts != nil && opts.Sort {
		SortQuery(res)
	}
	return res
}

// SortQuery sorts pairs by key. Pairs with equal keys keep their order.
func SortQuery(q Pairs) {
	slices.SortStableFunc(q, func(a, b Pair) int { return cmp.Compare(a.Key, b.Key) })
}

// FindQuery returns the value of the first pair with key in q, or an empty string.
// q must be sorted with [SortQuery]; the result for unsorted pairs is undefined.
func FindQuery(key string, q Pairs) string {
	i, ok := slices.BinarySearchFunc(q, key, func(p Pair, k string) int { return cmp.Compare(p.Key, k) })
	if !ok {
		return ""
	}
	return q[i].Value
}

// EncodeQuery joins pairs back into query text.
// Pairs with an empty value are written as the bare key.
func EncodeQuery(q Pairs, opts *QueryOptions) string {
	if len(q) == 0 {
		return ""
	}

	ps, kvs := opts.seps()
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, p := range q {
		if i > 0 {
			sb.WriteByte(ps)
		}
		sb.WriteString(p.Key)
		if p.Value != "" {
			sb.WriteByte(kvs)
			sb.WriteString(p.Value)
		}
	}
	return sb.String()
}

// Get returns the value of the first pair with key, scanning q in order.
func (q Pairs) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
