package entity

import "encoding/json"

// Tipos de sección soportados en la página de carreras.
const (
	SectionAbout   = "about"
	SectionValues  = "values"
	SectionPerks   = "perks"
	SectionCulture = "culture"
	SectionFAQ     = "faq"
)

// IsListSectionType indica si el contenido del tipo es enumerable
// (se edita como líneas y se transmite como lista de strings).
func IsListSectionType(sectionType string) bool {
	return sectionType == SectionPerks
}

// Section bloque de contenido de la página. El orden se recalcula denso 1..N
// en cada guardado del editor; aquí solo se transporta.
type Section struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Title   string         `json:"title"`
	Content SectionContent `json:"content"`
	Order   int            `json:"order"`
}

// DisplayTitle título para presentación: si está vacío cae al tipo.
func (s Section) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Type
}

// SectionContent variante etiquetada del contenido de una sección: un string
// único, o una lista ordenada de strings para tipos enumerables (perks).
// En el wire se serializa exactamente como el formato original: JSON string
// o JSON array, sin envoltorio.
type SectionContent struct {
	list  bool
	text  string
	items []string
}

// TextContent construye contenido de un solo string.
func TextContent(text string) SectionContent {
	return SectionContent{text: text}
}

// ListContent construye contenido enumerable.
func ListContent(items []string) SectionContent {
	return SectionContent{list: true, items: items}
}

// IsList indica si el contenido es enumerable.
func (c SectionContent) IsList() bool { return c.list }

// Text devuelve el contenido como string único (vacío si es lista).
func (c SectionContent) Text() string { return c.text }

// Items devuelve el contenido enumerable (nil si es string).
func (c SectionContent) Items() []string { return c.items }

// MarshalJSON serializa como string o como array según la variante.
func (c SectionContent) MarshalJSON() ([]byte, error) {
	if c.list {
		if c.items == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(c.items)
	}
	return json.Marshal(c.text)
}

// UnmarshalJSON acepta string, array de strings o null. Cualquier otra forma
// se normaliza a string vacío: el contrato original tolera secciones con
// forma arbitraria y el resto del sistema no debe romperse por ello.
func (c *SectionContent) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*c = SectionContent{text: text}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*c = SectionContent{list: true, items: items}
		return nil
	}
	*c = SectionContent{}
	return nil
}

// sectionWire forma laxa para deserializar secciones de origen arbitrario.
type sectionWire struct {
	ID      json.RawMessage `json:"id"`
	Type    string          `json:"type"`
	Title   string          `json:"title"`
	Content SectionContent  `json:"content"`
	Order   json.RawMessage `json:"order"`
}

// UnmarshalJSON normaliza secciones con campos ausentes o mal tipados en vez
// de fallar, igual que hacía el editor original al cargar datos guardados.
func (s *Section) UnmarshalJSON(data []byte) error {
	var w sectionWire
	if err := json.Unmarshal(data, &w); err != nil {
		*s = Section{Type: SectionAbout}
		return nil
	}
	out := Section{
		Type:    w.Type,
		Title:   w.Title,
		Content: w.Content,
	}
	if out.Type == "" {
		out.Type = SectionAbout
	}
	var id string
	if err := json.Unmarshal(w.ID, &id); err == nil {
		out.ID = id
	}
	var order int
	if err := json.Unmarshal(w.Order, &order); err == nil {
		out.Order = order
	}
	*s = out
	return nil
}
