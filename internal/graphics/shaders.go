package graphics

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"strings"

	"voxcraft/internal/face"
)

//go:embed shaders/*.vert shaders/*.frag
var shaderFS embed.FS

// Shader program names
const (
	BlocksProgram    = "blocks"
	SelectionProgram = "selection"
)

var ErrUnknownInclude = errors.New("unknown include")

// Includes maps include names to their generated source.
func Includes() map[string]string {
	return map[string]string{face.IncludeName: face.GLSLInclude()}
}

// Preprocess replaces every `#include "name"` line with the matching
// entry of includes. Included text is not scanned again.
func Preprocess(source string, includes map[string]string) (string, error) {
	var out strings.Builder
	sc := bufio.NewScanner(strings.NewReader(source))
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		name, ok, err := parseInclude(text)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			out.WriteString(text)
			out.WriteByte('\n')
			continue
		}
		body, found := includes[name]
		if !found {
			return "", fmt.Errorf("line %d: %q: %w", line, name, ErrUnknownInclude)
		}
		out.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			out.WriteByte('\n')
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return out.String(), nil
}

func parseInclude(line string) (string, bool, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(line), "#include")
	if !ok {
		return "", false, nil
	}
	rest = strings.TrimSpace(rest)
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false, fmt.Errorf("malformed include %q", line)
	}
	return rest[1 : len(rest)-1], true, nil
}

// ShaderSources returns the preprocessed vertex and fragment sources of a
// program.
func ShaderSources(program string) (vertex, fragment string, err error) {
	vs, err := shaderFS.ReadFile("shaders/" + program + ".vert")
	if err != nil {
		return "", "", fmt.Errorf("could not read vertex shader: %w", err)
	}
	fs, err := shaderFS.ReadFile("shaders/" + program + ".frag")
	if err != nil {
		return "", "", fmt.Errorf("could not read fragment shader: %w", err)
	}
	includes := Includes()
	if vertex, err = Preprocess(string(vs), includes); err != nil {
		return "", "", fmt.Errorf("%s.vert: %w", program, err)
	}
	if fragment, err = Preprocess(string(fs), includes); err != nil {
		return "", "", fmt.Errorf("%s.frag: %w", program, err)
	}
	return vertex, fragment, nil
}
