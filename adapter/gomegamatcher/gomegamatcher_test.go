package gomegamatcher_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"go.llib.dev/hamcrest"
	"go.llib.dev/hamcrest/adapter/gomegamatcher"
)

var _ = Describe("Wrap", func() {
	Context("when the subject matches", func() {
		It("passes the expectation", func() {
			Expect([]int{2, 1, 3}).To(gomegamatcher.Wrap(hamcrest.InAnyOrder(1, 2, 3)))
			Expect(map[string]int{"foo": 1}).To(gomegamatcher.Wrap(hamcrest.HasKey("foo")))
			Ω("  a   b  ").Should(gomegamatcher.Wrap(hamcrest.EqualToCompressingWhitespace("a b")))
		})

		It("reports success without an error", func() {
			ok, err := gomegamatcher.Wrap(hamcrest.GreaterThan(1)).Match(2)
			Expect(err).NotTo(HaveOccurred())
			Expect(ok).To(BeTrue())
		})
	})

	Context("when the subject doesn't match", func() {
		It("fails the expectation", func() {
			Expect("FOB").NotTo(gomegamatcher.Wrap(hamcrest.EndsWithIgnoringCase("Foo")))
			Expect([]int{1, 2, 3}).NotTo(gomegamatcher.Wrap(hamcrest.HasKey(0)))
		})

		It("uses the hamcrest failure message", func() {
			m := gomegamatcher.Wrap(hamcrest.InOrder(1, 2, 3))
			Expect(m.FailureMessage([]int{1, 2})).To(Equal("Failed asserting that value is an iterable that contains 3 items."))
		})
	})

	Context("when the expectation is negated", func() {
		It("describes the negated matcher", func() {
			m := gomegamatcher.Wrap("foo")
			Expect(m.NegatedFailureMessage("foo")).To(Equal(`Failed asserting that "foo" is not equal to "foo".`))
		})
	})

	Context("when a plain value is given", func() {
		It("is compared for equality", func() {
			Expect(int64(42)).To(gomegamatcher.Wrap(42))
		})
	})
})
