package entity

import (
	"bytes"
	"encoding/json"
)

// Theme apariencia de la página de carreras. El theme almacenado es un
// objeto JSON arbitrario, no un esquema cerrado: las claves conocidas con
// valor string se tipan y todo lo demás (claves desconocidas, o conocidas
// con valores que no son string) se conserva intacto en Extra y vuelve al
// wire sin cambios. Todos los campos son opcionales; el renderer aplica
// valores por defecto cuando faltan.
type Theme struct {
	PrimaryColor string
	AccentColor  string
	LogoURL      string
	BannerURL    string
	Font         string
	Extra        map[string]json.RawMessage
}

// UnmarshalJSON acepta cualquier objeto JSON. Solo falla cuando el valor no
// es un objeto (array, string, número); null se deja pasar tal cual por
// convención de encoding/json, quien llama decide qué hacer con él.
func (t *Theme) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := Theme{}
	for key, value := range raw {
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			switch key {
			case "primaryColor":
				out.PrimaryColor = s
				continue
			case "accentColor":
				out.AccentColor = s
				continue
			case "logoUrl":
				out.LogoURL = s
				continue
			case "bannerUrl":
				out.BannerURL = s
				continue
			case "font":
				out.Font = s
				continue
			}
		}
		if out.Extra == nil {
			out.Extra = map[string]json.RawMessage{}
		}
		out.Extra[key] = value
	}
	*t = out
	return nil
}

// MarshalJSON reconstruye el objeto original: Extra primero y los campos
// tipados no vacíos encima.
func (t Theme) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(t.Extra)+5)
	for key, value := range t.Extra {
		out[key] = value
	}
	putThemeString(out, "primaryColor", t.PrimaryColor)
	putThemeString(out, "accentColor", t.AccentColor)
	putThemeString(out, "logoUrl", t.LogoURL)
	putThemeString(out, "bannerUrl", t.BannerURL)
	putThemeString(out, "font", t.Font)
	return json.Marshal(out)
}

func putThemeString(out map[string]json.RawMessage, key, value string) {
	if value == "" {
		return
	}
	raw, _ := json.Marshal(value)
	out[key] = raw
}
