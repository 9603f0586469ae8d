package face

import (
	"strconv"
	"strings"
)

// IncludeName is the file name shaders use to include the tables.
const IncludeName = "blocks_common.h"

// GLSLInclude renders the face tables as GLSL constant arrays.
func GLSLInclude() string {
	var sb strings.Builder

	sb.WriteString("const vec3 FACE_VERTICES[6][4] = vec3[6][4] (\n")
	for f, quad := range FaceVertices {
		sb.WriteString("    vec3[4] ( ")
		for c, v := range quad {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("vec3(" + num(v[0]) + ", " + num(v[1]) + ", " + num(v[2]) + ")")
		}
		sb.WriteString(" )")
		if f < Count-1 {
			sb.WriteString(",")
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString("   // " + Face(f).String() + "\n")
	}
	sb.WriteString(");\n\n")

	sb.WriteString("const vec2 TEXTURE_POSITIONS[4] = vec2[4] (\n")
	for c, t := range TexturePositions {
		sb.WriteString("    vec2(" + num(t[0]) + ", " + num(t[1]) + ")")
		if c < Corners-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(");\n\n")

	sb.WriteString("const float LIGHT_LEVELS[2] = float[2] (\n")
	for i, l := range LightLevels {
		s := strconv.FormatFloat(float64(l), 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		sb.WriteString("    " + s)
		if i < len(LightLevels)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(");\n")

	return sb.String()
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
