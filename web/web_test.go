package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gorilla/mux"

	sctutorial "github.com/shekhars271991/as-strongconsistancy"
	"github.com/shekhars271991/as-strongconsistancy/web"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func testServer() *httptest.Server {
	config := sctutorial.NewConfig()
	// prefix that will never match a running container.
	config.ContainerPrefix = "sctutorial-test-absent-"

	router := mux.NewRouter()
	web.NewServer(config).Bind(router)
	return httptest.NewServer(router)
}

func decode(resp *http.Response, into interface{}) {
	defer resp.Body.Close()
	Expect(json.NewDecoder(resp.Body).Decode(into)).To(Succeed())
}

var _ = Describe("Lessons API", func() {
	It("serves the full catalog", func() {
		s := testServer()
		defer s.Close()

		resp, err := http.Get(s.URL + "/api/lessons")
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var payload struct {
			Lessons []web.LessonPage `json:"lessons"`
		}
		decode(resp, &payload)
		Expect(payload.Lessons).To(HaveLen(25))
		for i, l := range payload.Lessons {
			Expect(l.ID).To(Equal(i))
			Expect(l.Title).ToNot(BeEmpty())
			Expect(l.Content).ToNot(BeEmpty())
			Expect(l.Category).To(BeElementOf("setup", "concepts", "practice", "operations", "reference"))
		}
	})

	It("serves a single lesson by id", func() {
		s := testServer()
		defer s.Close()

		resp, err := http.Get(s.URL + "/api/lessons/16")
		Expect(err).ToNot(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var payload struct {
			Lesson web.LessonPage `json:"lesson"`
		}
		decode(resp, &payload)
		Expect(payload.Lesson.ID).To(Equal(16))
		Expect(payload.Lesson.Title).To(Equal("Best Practices"))
	})

	It("rejects ids outside the catalog", func() {
		s := testServer()
		defer s.Close()

		for _, id := range []string{"25", "-1", "bogus"} {
			resp, err := http.Get(s.URL + "/api/lessons/" + id)
			Expect(err).ToNot(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(resp.Header.Get("Content-Type")).To(Equal("application/json"))

			var payload map[string]string
			decode(resp, &payload)
			Expect(payload["error"]).To(Equal("Lesson not found"))
		}
	})
})

var _ = Describe("Cluster status", func() {
	It("reports an error when no container is present", func() {
		s := testServer()
		defer s.Close()

		resp, err := http.Get(s.URL + "/api/cluster/status")
		Expect(err).ToNot(HaveOccurred())

		var payload map[string]interface{}
		decode(resp, &payload)
		Expect(payload["status"]).To(Equal("error"))
	})
})

var _ = Describe("Cluster creation", func() {
	It("directs plain posts to the websocket endpoint", func() {
		s := testServer()
		defer s.Close()

		resp, err := http.Post(s.URL+"/api/setup/create-cluster", "application/json", nil)
		Expect(err).ToNot(HaveOccurred())

		var payload map[string]interface{}
		decode(resp, &payload)
		Expect(payload["success"]).To(BeFalse())
		Expect(payload["error"]).To(ContainSubstring("WebSocket"))
	})
})
