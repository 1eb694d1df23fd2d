package symtab

import "fmt"

// DefaultBucketCount is the number of buckets a scope allocates when
// no override is supplied by the caller (see config.ProjectConfig).
const DefaultBucketCount = 211

// bucketEntry is one link in a bucket's collision chain. Chains
// preserve insertion order, which is what makes PrintCurrentScope's
// output deterministic and therefore testable.
type bucketEntry struct {
	record *Record
	next   *bucketEntry
}

// Scope is a name-to-record store for a single lexical block,
// implemented as a fixed-size array of singly-linked buckets. The hash
// function is a plain sum-of-character-codes modulo the bucket count:
// deterministic and reproducible, not cryptographic, exactly as
// spec'd — the goal is stable log output, not collision resistance.
type Scope struct {
	id      int
	buckets []*bucketEntry
}

func newScope(id, bucketCount int) *Scope {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}

	return &Scope{
		id:      id,
		buckets: make([]*bucketEntry, bucketCount),
	}
}

// ID returns the scope's creation-order identifier.
func (s *Scope) ID() int {
	return s.id
}

// hash sums the character codes of name modulo the bucket count.
func (s *Scope) hash(name string) int {
	sum := 0
	for _, c := range name {
		sum += int(c)
	}

	return sum % len(s.buckets)
}

// lookup returns the record named name in this scope, if any.
func (s *Scope) lookup(name string) (*Record, bool) {
	for e := s.buckets[s.hash(name)]; e != nil; e = e.next {
		if e.record.Name == name {
			return e.record, true
		}
	}

	return nil, false
}

// insert appends rec to the tail of its bucket's chain if no record of
// the same name already exists in this scope. It reports whether the
// insertion happened.
func (s *Scope) insert(rec *Record) bool {
	if _, ok := s.lookup(rec.Name); ok {
		return false
	}

	idx := s.hash(rec.Name)
	entry := &bucketEntry{record: rec}

	if s.buckets[idx] == nil {
		s.buckets[idx] = entry
		return true
	}

	tail := s.buckets[idx]
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = entry

	return true
}

// records returns every record in the scope, bucket by bucket, each
// bucket in insertion order. This is the enumeration PrintCurrentScope
// relies on for stable, testable output.
func (s *Scope) records() []*Record {
	var out []*Record

	for _, head := range s.buckets {
		for e := head; e != nil; e = e.next {
			out = append(out, e.record)
		}
	}

	return out
}

// dump renders every bucket chain in this scope in the format
// documented in spec.md §6: "<name>: <data_type> <node_kind>
// [size=<n>] [params=(...)]".
func (s *Scope) dump() []string {
	var lines []string

	for _, rec := range s.records() {
		lines = append(lines, formatRecord(rec))
	}

	return lines
}

func formatRecord(rec *Record) string {
	dt := rec.DataType
	if rec.NodeKind == KindFunction {
		dt = rec.ReturnType
	}

	line := fmt.Sprintf("%s: %s %s", rec.Name, dt, rec.NodeKind)

	switch rec.NodeKind {
	case KindArray:
		line += fmt.Sprintf(" [size=%d]", rec.ArraySize)
	case KindFunction:
		line += " [params=("
		for i, p := range rec.Parameters {
			if i > 0 {
				line += ", "
			}
			if p.FormalName == "" {
				line += p.Type.String()
			} else {
				line += fmt.Sprintf("%s %s", p.Type, p.FormalName)
			}
		}
		line += ")]"
	}

	return line
}
