// Package fixtures loads the sample records inserted by the seed endpoints.
// Defaults are embedded in the binary; a directory holding freelancers.yaml
// and recruiters.yaml overrides them.
package fixtures

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"
)

const (
	freelancersFile = "freelancers.yaml"
	recruitersFile  = "recruiters.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

var errEmptyFixture = errors.New("fixture file holds no records")

type Set struct {
	Freelancers []freelancer.Input
	Recruiters  []recruiter.Input
}

// Load reads fixtures from dir, or the embedded defaults when dir is empty.
func Load(dir string) (Set, error) {
	var src fs.FS
	if strings.TrimSpace(dir) == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return Set{}, err
		}
		src = sub
	} else {
		src = os.DirFS(dir)
	}
	return LoadFS(src)
}

func LoadFS(src fs.FS) (Set, error) {
	var set Set
	if err := decode(src, freelancersFile, &set.Freelancers); err != nil {
		return Set{}, err
	}
	if len(set.Freelancers) == 0 {
		return Set{}, fmt.Errorf("%s: %w", freelancersFile, errEmptyFixture)
	}
	if err := decode(src, recruitersFile, &set.Recruiters); err != nil {
		return Set{}, err
	}
	if len(set.Recruiters) == 0 {
		return Set{}, fmt.Errorf("%s: %w", recruitersFile, errEmptyFixture)
	}
	return set, nil
}

func decode(src fs.FS, name string, out any) error {
	b, err := fs.ReadFile(src, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.UnmarshalStrict(b, out); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
