package markers

import (
	"errors"
	"strings"
)

const (
	Start = "# >>> schedcheck >>>"
	End   = "# <<< schedcheck <<<"
)

var errMissingEnd = errors.New("found start marker but no end marker")

// Insert inserts or replaces a marked block in content.
// If markers exist, the block between them is replaced.
// If content is empty and prefix is non-empty, the result is prefix+"\n\n"+block+"\n".
// If content is empty and prefix is empty, the result is block+"\n".
// Otherwise the block is appended after a blank line.
func Insert(content, block, prefix string) (string, error) {
	if start := strings.Index(content, Start); start != -1 {
		end, err := blockEnd(content, start)
		if err != nil {
			return "", err
		}
		return content[:start] + block + content[end:], nil
	}
	if content == "" {
		if prefix != "" {
			return prefix + "\n\n" + block + "\n", nil
		}
		return block + "\n", nil
	}
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + "\n" + block + "\n", nil
}

// Remove cuts the marked block out of content. If nothing but prefix is
// left, the result is prefix+"\n". Content without markers comes back as is.
func Remove(content, prefix string) (string, error) {
	start := strings.Index(content, Start)
	if start == -1 {
		return content, nil
	}
	end, err := blockEnd(content, start)
	if err != nil {
		return "", err
	}

	before := strings.TrimRight(content[:start], "\n")
	after := strings.TrimPrefix(content[end:], "\n")
	result := before + after
	if after != "" && before != "" {
		result = before + "\n" + after
	}
	switch {
	case result == "" || result == prefix:
		if prefix == "" {
			return "", nil
		}
		return prefix + "\n", nil
	case !strings.HasSuffix(result, "\n"):
		result += "\n"
	}
	return result, nil
}

// Contains reports whether content carries a marked block.
func Contains(content string) bool {
	return strings.Contains(content, Start)
}

func blockEnd(content string, start int) (int, error) {
	end := strings.Index(content[start:], End)
	if end == -1 {
		return 0, errMissingEnd
	}
	return start + end + len(End), nil
}
