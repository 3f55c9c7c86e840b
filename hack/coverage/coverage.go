// Command coverage merges the .coverprofile files written per package by
// `make test_cover` into one profile that `go tool cover` can read.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

func main() {
	flag.Parse()
	args := flag.Args()

	root, err := os.Getwd()
	if err != nil {
		log.Fatal("coverage: could not get current working directory")
	}

	out := "coverage.out"

	switch len(args) {
	case 0:
	case 1:
		root = args[0]
	case 2:
		root, out = args[0], args[1]
	default:
		// nolint:forbidigo
		fmt.Println("Usage: coverage [root] [out]\n\nMerges all .coverprofile files rooted in [root] into a single profile at [out].\n[root] defaults to the current directory, [out] to 'coverage.out'.")
		os.Exit(1)
	}

	outAbs, err := filepath.Abs(out)
	if err != nil {
		log.Fatal("coverage: could not canonicalize out path:", err)
	}

	profile, err := mergeProfiles(root, outAbs)
	if err != nil {
		log.Fatal("coverage: ", err)
	}

	if err := os.WriteFile(out, []byte(profile), 0o666); err != nil {
		log.Fatal("coverage: could not write to out:", err)
	}
}

type block struct {
	numStmt, count int
}

// mergeProfiles reads all profiles under root, except skip, and returns the
// merged profile. Counts of blocks seen in several profiles are added.
func mergeProfiles(root, skip string) (string, error) {
	mode := ""
	blocks := map[string]block{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || filepath.Ext(path) != ".coverprofile" {
			return nil
		}

		if abs, err := filepath.Abs(path); err == nil && abs == skip {
			return nil
		}

		m, err := readProfile(path, blocks)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if mode == "" {
			mode = m
		} else if m != "" && m != mode {
			return fmt.Errorf("%s: mixed cover modes %q and %q", path, mode, m)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("could not walk directory structure: %w", err)
	}

	if mode == "" {
		mode = "set"
	}

	lines := make([]string, 0, len(blocks))
	for l, b := range blocks {
		count := b.count
		if mode == "set" && count > 1 {
			count = 1
		}

		lines = append(lines, fmt.Sprintf("%s %d %d", l, b.numStmt, count))
	}

	sort.Strings(lines)

	return "mode: " + mode + "\n" + strings.Join(lines, "\n") + "\n", nil
}

func readProfile(path string, blocks map[string]block) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	mode := ""

	s := bufio.NewScanner(f)
	for s.Scan() {
		l := s.Text()

		if strings.HasPrefix(l, "mode:") {
			mode = strings.TrimSpace(strings.TrimPrefix(l, "mode:"))
			continue
		}

		if l == "" {
			continue
		}

		parts := strings.Split(l, " ")
		if len(parts) != 3 {
			return "", fmt.Errorf("incorrect coverprofile line: %s", l)
		}

		numStmt, err := strconv.Atoi(parts[1])
		if err != nil {
			return "", fmt.Errorf("incorrect num stmt in coverprofile line: %s", l)
		}

		count, err := strconv.Atoi(parts[2])
		if err != nil {
			return "", fmt.Errorf("incorrect count in coverprofile line: %s", l)
		}

		b := blocks[parts[0]]
		b.numStmt = numStmt
		b.count += count
		blocks[parts[0]] = b
	}

	return mode, s.Err()
}
