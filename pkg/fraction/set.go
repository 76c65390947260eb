// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package fraction

import "gitlab.com/accumulatenetwork/fraction/pkg/errors"

// Set is a set of numbers: integers, float64s, and Fractions. Members are
// bucketed by [Hash] and deduplicated with the same rules as
// [Fraction.Equal], so 1/2, 2/4, and 0.5 are the same member. The first value
// added is the one retained.
//
// The zero value is an empty set. A Set is not safe for concurrent
// modification.
type Set struct {
	buckets map[uint64][]member
	count   int
}

type member struct {
	value interface{}
	op    operand
}

// NewSet returns a set containing the given values.
func NewSet(values ...interface{}) (*Set, error) {
	s := new(Set)
	for _, v := range values {
		_, err := s.Add(v)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of members.
func (s *Set) Len() int {
	return s.count
}

// Add adds v to the set and returns true if it was not already a member. Add
// returns InvalidArgument if v is not a number.
func (s *Set) Add(v interface{}) (bool, error) {
	h, o, ok := s.key(v)
	if !ok {
		return false, errors.InvalidArgument.WithFormat("cannot add %T to a set of numbers", v)
	}
	if s.find(h, o) >= 0 {
		return false, nil
	}

	if s.buckets == nil {
		s.buckets = map[uint64][]member{}
	}
	s.buckets[h] = append(s.buckets[h], member{v, o})
	s.count++
	return true, nil
}

// Has returns true if v is a member. Values that are not numbers are never
// members.
func (s *Set) Has(v interface{}) bool {
	h, o, ok := s.key(v)
	return ok && s.find(h, o) >= 0
}

// Remove removes v and returns true if it was a member.
func (s *Set) Remove(v interface{}) bool {
	h, o, ok := s.key(v)
	if !ok {
		return false
	}
	i := s.find(h, o)
	if i < 0 {
		return false
	}

	bucket := s.buckets[h]
	bucket = append(bucket[:i], bucket[i+1:]...)
	if len(bucket) == 0 {
		delete(s.buckets, h)
	} else {
		s.buckets[h] = bucket
	}
	s.count--
	return true
}

// Values returns the members in no particular order.
func (s *Set) Values() []interface{} {
	values := make([]interface{}, 0, s.count)
	for _, bucket := range s.buckets {
		for _, m := range bucket {
			values = append(values, m.value)
		}
	}
	return values
}

func (s *Set) key(v interface{}) (uint64, operand, bool) {
	o := operandOf(v)
	if o.kind == KindUnsupported {
		return 0, o, false
	}
	return HashFloat(o.float()), o, true
}

func (s *Set) find(h uint64, o operand) int {
	for i, m := range s.buckets[h] {
		c, ok := compareOperands(m.op, o)
		if ok && c == 0 {
			return i
		}
	}
	return -1
}
