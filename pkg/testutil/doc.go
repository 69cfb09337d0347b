// Package testutil provides filesystem helpers shared by plinth tests.
//
// Tests build template directories and target trees under t.TempDir()
// and assert on the files the pipeline produced. All test data is
// defined inline; no fixtures are read from the repository.
package testutil
