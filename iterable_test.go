package hamcrest_test

import (
	"maps"
	"math"
	"slices"
	"testing"

	"go.llib.dev/hamcrest"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestInOrder(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let[any](s, func(t *testcase.T) any { return []int{1, 2, 3} })
	matcher := testcase.Let(s, func(t *testcase.T) hamcrest.Matcher {
		return hamcrest.InOrder(1, hamcrest.GreaterThan(1), 3)
	})
	act := func(t *testcase.T) bool { return matcher.Get(t).Matches(subject.Get(t)) }

	s.Then("items matching position by position are accepted", func(t *testcase.T) {
		t.Must.True(act(t))
	})

	s.When("the items are in another order", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return []int{3, 2, 1} })

		s.Then("it doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable where each item (in order) is equal to 1 and is greater than 1 and is equal to 3",
				matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.When("the subject has fewer items than matchers", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return []int{1, 2} })

		s.Then("it doesn't match and the expected count is reported", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable that contains 3 items", matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.When("the subject has more items than matchers", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return []int{1, 2, 3, 4} })

		s.Then("it doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
		})
	})

	s.When("the subject is not iterable", func(s *testcase.Spec) {
		subject.LetValue(s, "123")

		s.Then("it doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable", matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.When("the subject is an iterator", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return slices.Values([]int{1, 5, 3}) })

		s.Then("its items are matched", func(t *testcase.T) {
			t.Must.True(act(t))
		})
	})

	s.Test("without matchers it panics with a usage error", func(t *testcase.T) {
		err := usageError(t, func() { hamcrest.InOrder() })
		t.Must.Contain(err.Error(), "at least one matcher must be provided")
	})
}

func TestInAnyOrder(t *testing.T) {
	s := testcase.NewSpec(t)

	subject := testcase.Let[any](s, func(t *testcase.T) any { return []int{2, 1, 3} })
	matcher := testcase.Let(s, func(t *testcase.T) hamcrest.Matcher {
		return hamcrest.InAnyOrder(hamcrest.Equal(1), hamcrest.Equal(2), hamcrest.Equal(3))
	})
	act := func(t *testcase.T) bool { return matcher.Get(t).Matches(subject.Get(t)) }

	s.Then("a permutation of the expected items is accepted", func(t *testcase.T) {
		t.Must.True(act(t))
	})

	s.When("an item is not expected", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return []int{2, 1, 4} })

		s.Then("it doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable where each item (in any order) is equal to 1 and is equal to 2 and is equal to 3",
				matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.When("lengths differ", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return []int{1, 2, 3, 3} })

		s.Then("it doesn't match regardless of the content", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable that contains 3 items", matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.When("the same item would be needed twice", func(s *testcase.Spec) {
		subject.Let(s, func(t *testcase.T) any { return []int{1, 1, 3} })

		s.Then("it doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
		})
	})

	s.Test("matchers claim items greedily", func(t *testcase.T) {
		// the first matcher takes 1, leaving nothing for Equal(1)
		m := hamcrest.InAnyOrder(hamcrest.LessThan(5), hamcrest.Equal(1))
		t.Must.False(m.Matches([]int{1, 7}))
		t.Must.True(m.Matches([]int{3, 1}))
	})

	s.Test("a subject satisfying InOrder has a permutation satisfying InAnyOrder", func(t *testcase.T) {
		items := []int{t.Random.IntBetween(0, 9), t.Random.IntBetween(10, 19), t.Random.IntBetween(20, 29)}
		ms := []any{hamcrest.Equal(items[0]), hamcrest.Equal(items[1]), hamcrest.Equal(items[2])}
		t.Must.True(hamcrest.InOrder(ms...).Matches(items))

		k := t.Random.IntBetween(0, len(items)-1)
		shuffled := append(slices.Clone(items[k:]), items[:k]...)
		slices.Reverse(shuffled)
		t.Must.True(hamcrest.InAnyOrder(ms...).Matches(shuffled))
	})
}

func TestInRelativeOrder(t *testing.T) {
	m := hamcrest.InRelativeOrder(hamcrest.Equal("b"), hamcrest.Equal("d"))

	assert.True(t, m.Matches([]string{"a", "b", "c", "d", "e"}))
	assert.False(t, m.Matches([]string{"a", "d", "b", "c", "e"}))
	assert.True(t, m.Matches([]string{"b", "d"}))
	assert.False(t, m.Matches([]string{"b"}))
	assert.False(t, m.Matches([]string{}))
	assert.False(t, m.Matches(42))

	assert.Equal(t,
		`value is an iterable where each item (in relative order) is equal to "b" and is equal to "d"`,
		m.DescribeMismatch([]string{"d", "b"}))
	assert.Equal(t, "value is an iterable", m.DescribeMismatch(42))

	usageError(t, func() { hamcrest.InRelativeOrder() })
}

func TestHasItems(t *testing.T) {
	t.Run("HasItem", func(t *testing.T) {
		m := hamcrest.HasItem(hamcrest.GreaterThan(2))
		assert.True(t, m.Matches([]int{1, 2, 3}))
		assert.False(t, m.Matches([]int{1, 2}))
		assert.False(t, m.Matches(nil))
		assert.Equal(t, "is an iterable that contains an item that is greater than 2", m.Describe())
	})
	t.Run("every target needs a witness", func(t *testing.T) {
		m := hamcrest.HasItems(1, 3)
		assert.True(t, m.Matches([]int{3, 2, 1}))
		assert.False(t, m.Matches([]int{1, 2}))
		assert.Equal(t,
			"value is an iterable that contains an item that is equal to 1 and an item that is equal to 3",
			m.DescribeMismatch([]int{1, 2}))
	})
	t.Run("a single item can satisfy many targets", func(t *testing.T) {
		assert.True(t, hamcrest.HasItems(hamcrest.GreaterThan(1), hamcrest.LessThan(3)).Matches([]int{2}))
	})
	t.Run("map values are items", func(t *testing.T) {
		assert.True(t, hamcrest.HasItem("bar").Matches(map[string]string{"foo": "bar"}))
	})
	t.Run("not iterable", func(t *testing.T) {
		assert.Equal(t, "value is an iterable", hamcrest.HasItem(1).DescribeMismatch(1))
	})
	t.Run("without matchers it panics", func(t *testing.T) {
		usageError(t, func() { hamcrest.HasItems() })
	})
}

// cursor is a pull iterator over a slice.
type cursor struct {
	items []int
	at    int
}

func (c *cursor) Next() bool {
	if len(c.items) <= c.at {
		return false
	}
	c.at++
	return true
}

func (c *cursor) Value() int { return c.items[c.at-1] }

func TestEveryItem(t *testing.T) {
	m := hamcrest.EveryItem(hamcrest.GreaterThan(0))
	assert.True(t, m.Matches([]int{1, 2, 3}))
	assert.False(t, m.Matches([]int{1, 0, 3}))
	assert.True(t, m.Matches([]int{}))
	assert.False(t, m.Matches("123"))
	assert.True(t, m.Matches(maps.Values(map[string]int{"a": 1, "b": 2})))
	assert.Equal(t, "value is an iterable in which each item is greater than 0", m.DescribeMismatch([]int{0}))
	assert.Equal(t, "value is an iterable", m.DescribeMismatch(0))
	assert.True(t, m.Matches(&cursor{items: []int{1, 2}}))
	assert.False(t, m.Matches((*cursor)(nil)))
	assert.Equal(t, "value is an iterable", m.DescribeMismatch((*cursor)(nil)))
}

func TestIn(t *testing.T) {
	t.Run("loose", func(t *testing.T) {
		m := hamcrest.In([]any{1, "two", record{ID: 3}})
		assert.True(t, m.Matches(int64(1)))
		assert.True(t, m.Matches("two"))
		assert.True(t, m.Matches(record{ID: 3}))
		assert.False(t, m.Matches(2))
		assert.Equal(t, "is found in the iterable", m.Describe())
		assert.Equal(t, "2 is found in the iterable", m.DescribeMismatch(2))
	})
	t.Run("strict", func(t *testing.T) {
		r := &record{ID: 1}
		m := hamcrest.InStrict([]any{1, r})
		assert.True(t, m.Matches(1))
		assert.False(t, m.Matches(int64(1)))
		assert.True(t, m.Matches(r))
		assert.False(t, m.Matches(&record{ID: 1}))
		assert.Equal(t, "is found in the iterable (using strict comparison)", m.Describe())
	})
	t.Run("general iterables", func(t *testing.T) {
		assert.True(t, hamcrest.In(slices.Values([]string{"a", "b"})).Matches("b"))
		assert.True(t, hamcrest.In(map[string]int{"a": 1}).Matches(1))
	})
	t.Run("collection must be iterable", func(t *testing.T) {
		usageError(t, func() { hamcrest.In(42) })
	})
}

func TestSize(t *testing.T) {
	s := testcase.NewSpec(t)

	constraint := testcase.Let[any](s, nil)
	subject := testcase.Let[any](s, func(t *testcase.T) any { return []int{1, 2, 3} })
	matcher := testcase.Let(s, func(t *testcase.T) hamcrest.Matcher {
		return hamcrest.Size(constraint.Get(t))
	})
	act := func(t *testcase.T) bool { return matcher.Get(t).Matches(subject.Get(t)) }

	s.When("constraint is an integer", func(s *testcase.Spec) {
		constraint.LetValue(s, 3)

		s.Then("it is an exact count", func(t *testcase.T) {
			t.Must.True(act(t))
			t.Must.Equal("is an iterable with a count matches 3", matcher.Get(t).Describe())
		})
	})

	s.When("constraint is an unsigned integer", func(s *testcase.Spec) {
		constraint.Let(s, func(t *testcase.T) any {
			return random.Pick[any](t.Random, uint(3), uint8(3), uint16(3), uint32(3), uint64(3), uintptr(3))
		})

		s.Then("it is an exact count too", func(t *testcase.T) {
			t.Must.True(act(t))
			t.Must.Equal("is an iterable with a count matches 3", matcher.Get(t).Describe())
		})
	})

	s.When("constraint is an unsigned integer beyond the int range", func(s *testcase.Spec) {
		constraint.LetValue(s, uint64(math.MaxUint64))

		s.Then("it panics", func(t *testcase.T) {
			err := usageError(t, func() { hamcrest.Size(constraint.Get(t)) })
			t.Must.Contain(err.Error(), "out of the int range")
		})
	})

	s.When("constraint is Count", func(s *testcase.Spec) {
		constraint.Let(s, func(t *testcase.T) any { return hamcrest.Count(2) })

		s.Then("the count must be equal", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable with a count matches 2", matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.When("constraint is an ordering", func(s *testcase.Spec) {
		constraint.Let(s, func(t *testcase.T) any { return hamcrest.GreaterThanOrEqualTo(3) })

		s.Then("it is applied to the count", func(t *testcase.T) {
			t.Must.True(act(t))
			t.Must.Equal("is an iterable with a size that is greater than or equal to 3", matcher.Get(t).Describe())
		})
	})

	s.When("constraint is Equal", func(s *testcase.Spec) {
		constraint.Let(s, func(t *testcase.T) any { return hamcrest.Equal(3) })

		s.Then("it is applied to the count", func(t *testcase.T) {
			t.Must.True(act(t))
		})
	})

	s.When("constraint is IsEmpty", func(s *testcase.Spec) {
		constraint.Let(s, func(t *testcase.T) any { return hamcrest.IsEmpty() })

		s.Then("a non empty subject doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an empty iterable", matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})

		s.And("the subject is empty", func(s *testcase.Spec) {
			subject.Let(s, func(t *testcase.T) any { return []int{} })

			s.Then("it matches", func(t *testcase.T) {
				t.Must.True(act(t))
			})
		})
	})

	s.When("constraint is SameSizeAs", func(s *testcase.Spec) {
		constraint.Let(s, func(t *testcase.T) any { return hamcrest.SameSizeAs([]string{"a", "b", "c"}) })

		s.Then("lengths are compared", func(t *testcase.T) {
			t.Must.True(act(t))
		})
	})

	s.When("subject is not iterable", func(s *testcase.Spec) {
		constraint.LetValue(s, 3)
		subject.LetValue(s, "abc")

		s.Then("it doesn't match", func(t *testcase.T) {
			t.Must.False(act(t))
			t.Must.Equal("value is an iterable", matcher.Get(t).DescribeMismatch(subject.Get(t)))
		})
	})

	s.Test("constraints outside of the allow list panic", func(t *testcase.T) {
		err := usageError(t, func() { hamcrest.Size(hamcrest.ContainsString("x")) })
		t.Must.Contain(err.Error(), "Constraint must be one of the constraints: Count, Equal, GreaterThan, GreaterThanOrEqualTo, IsEmpty, LessThan, LessThanOrEqualTo, or SameSizeAs. Received hamcrest.textMatcher")
		usageError(t, func() { hamcrest.Size("3") })
		usageError(t, func() { hamcrest.SameSizeAs(3) })
	})

	s.Test("EmptyIterable", func(t *testcase.T) {
		t.Must.True(hamcrest.EmptyIterable().Matches([]int(nil)))
		t.Must.False(hamcrest.EmptyIterable().Matches([]int{1}))
		t.Must.False(hamcrest.EmptyIterable().Matches(""))
	})
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, hamcrest.IsEmpty().Matches(nil))
	assert.True(t, hamcrest.IsEmpty().Matches(""))
	assert.True(t, hamcrest.IsEmpty().Matches(map[string]int{}))
	assert.False(t, hamcrest.IsEmpty().Matches("x"))
	assert.False(t, hamcrest.IsEmpty().Matches(0))
	assert.Equal(t, `"x" is not empty`, hamcrest.Not(hamcrest.Not(hamcrest.Not(hamcrest.IsEmpty()))).DescribeMismatch("x"))
}
