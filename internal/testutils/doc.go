// Package testutils provides helpers shared by the package tests: an
// in-memory slog handler for asserting on log output, and HTTP helpers for
// driving handlers through httptest and checking JSON responses.
//
//	handler := testutils.NewTestSlogHandler()
//	logger := slog.New(handler)
//	// ... exercise code that logs ...
//	entry, ok := handler.Find("generation failed")
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.PostJSON(t, server, "/api/quizzes", body)
//	testutils.AssertErrorResponse(t, resp, http.StatusBadRequest, "Invalid")
package testutils
