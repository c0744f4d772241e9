package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/gardenappl/mitch-sub001/src/library"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateLibraryFile validates an exported library JSON file
func ValidateLibraryFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	return ValidateLibraryJSON(data)
}

// ValidateLibraryJSON validates exported library JSON data
func ValidateLibraryJSON(data []byte) error {
	var lib library.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return ValidateLibrary(&lib)
}

// ValidateLibrary checks a library document against the schema before
// it is written anywhere.
func ValidateLibrary(lib *library.Library) error {
	issues := LibrarySchema.Validate(lib)
	if len(issues) == 0 {
		return nil
	}

	var messages []string
	for field, fieldIssues := range issues {
		for _, issue := range fieldIssues {
			messages = append(messages, fmt.Sprintf("%s: %s", field, issue.Message))
		}
	}
	sort.Strings(messages)

	return fmt.Errorf("library validation failed: %s", strings.Join(messages, "; "))
}
