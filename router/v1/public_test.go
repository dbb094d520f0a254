package v1

import (
	"net/http"
	"testing"
)

func TestHandlers_GetVersion(t *testing.T) {
	t.Parallel()

	path := "/api/v1/version"
	server := Setup(t)

	obj := R(t, server).GET(path).
		Expect().
		Status(http.StatusOK).
		JSON().
		Object()

	obj.Value("version").String().IsEqual("version")
	obj.Value("revision").String().IsEqual("revision")
}
