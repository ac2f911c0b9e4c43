package lessons

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("suggested commands", func() {
	It("covers every stage that shows suggestions", func() {
		for _, l := range Registry() {
			if SkipSuggestions(l.Stage) {
				continue
			}
			data, ok := suggestedByStage[l.Stage]
			Expect(ok).To(BeTrue(), "stage %q has no command table", l.Stage)
			Expect(data.Title).ToNot(BeEmpty())
			Expect(len(data.Terminal) + len(data.AQL) + len(data.Asadm)).ToNot(BeZero())
		}
	})

	It("describes every runnable command", func() {
		for stage, data := range suggestedByStage {
			for _, group := range [][]Suggestion{data.Terminal, data.AQL, data.Asadm} {
				for _, s := range group {
					Expect(s.Desc).ToNot(BeEmpty(), "stage %q has an undescribed entry", stage)
				}
			}
		}
	})
})
