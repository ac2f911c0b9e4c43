package lessons_test

import (
	. "github.com/shekhars271991/as-strongconsistancy/lessons"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	It("lists the curriculum in teaching order", func() {
		all := Registry()
		Expect(all).To(HaveLen(10))
		for i, l := range all {
			Expect(l.Number).To(Equal(i))
			Expect(l.Run).ToNot(BeNil())
			Expect(l.Stage).ToNot(BeEmpty())
		}
	})
})

var _ = Describe("Select", func() {
	It("omits the aerolab setup lesson by default", func() {
		selected := Select(Registry(), nil)
		Expect(selected).To(HaveLen(9))
		Expect(selected[0].Number).To(Equal(1))
	})

	It("preserves teaching order regardless of request order", func() {
		selected := Select(Registry(), []int{9, 3, 0})
		numbers := []int{}
		for _, l := range selected {
			numbers = append(numbers, l.Number)
		}
		Expect(numbers).To(Equal([]int{0, 3, 9}))
	})

	It("ignores unknown lesson numbers", func() {
		Expect(Select(Registry(), []int{42})).To(BeEmpty())
	})
})

var _ = Describe("SkipSuggestions", func() {
	It("skips the stages before hands-on work", func() {
		Expect(SkipSuggestions(StageAerolab)).To(BeTrue())
		Expect(SkipSuggestions(StageIntroduction)).To(BeTrue())
		Expect(SkipSuggestions(StageConfiguration)).To(BeTrue())
		Expect(SkipSuggestions(StageBasicOps)).To(BeFalse())
		Expect(SkipSuggestions(StageCluster)).To(BeFalse())
	})
})
