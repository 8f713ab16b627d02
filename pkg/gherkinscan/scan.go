// Package gherkinscan locates and parses Gherkin feature files and flattens
// them into the raw step lines consumed by the resolve package.
package gherkinscan

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	gherkin "github.com/cucumber/gherkin/go/v26"
	messages "github.com/cucumber/messages/go/v21"
	"github.com/google/uuid"
)

const (
	FeatureExtension = ".feature"
)

// SearchFeatureFilesIn returns every .feature file under the given
// directories, walking each one recursively.
func SearchFeatureFilesIn(directories []string) ([]string, error) {
	featureFiles := make([]string, 0)

	for _, directory := range directories {
		err := filepath.Walk(directory, func(path string, info fs.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.HasSuffix(info.Name(), FeatureExtension) {
				featureFiles = append(featureFiles, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return featureFiles, nil
}

// ParseGherkinFile parses one feature source into a Gherkin document.
// Scenario ids are freshly generated UUIDs.
func ParseGherkinFile(reader io.Reader) (*messages.GherkinDocument, error) {
	return gherkin.ParseGherkinDocument(reader, uuid.NewString)
}
