package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, the document tree, published styles, and schema version information.
type FileResponse struct {
	Name          string           `json:"name"`
	LastModified  string           `json:"lastModified"`
	ThumbnailURL  string           `json:"thumbnailUrl"`
	Version       string           `json:"version"`
	Document      Node             `json:"document"`
	Styles        map[string]Style `json:"styles"`
	SchemaVersion int              `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and optional component/style information.
// This is the structure returned for each requested node in a NodesResponse.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
	Styles     map[string]Style     `json:"styles,omitempty"`
}

// Component represents a Figma component definition with its metadata.
// Components are reusable design elements that can be instantiated throughout the file.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// ImagesResponse represents the response from the Figma image render API endpoint.
// Images maps node IDs to temporary download URLs; an empty URL means the node could not be rendered.
type ImagesResponse struct {
	Err    string            `json:"err"`
	Images map[string]string `json:"images"`
}

// FileImagesResponse represents the response from the Figma file images API endpoint.
// Meta.Images maps image references (as they appear in IMAGE fills) to temporary
// download URLs; expired sources map to an empty URL.
type FileImagesResponse struct {
	Err    bool `json:"error"`
	Status int  `json:"status"`
	Meta   struct {
		Images map[string]string `json:"images"`
	} `json:"meta"`
}

// Node represents a single element in the Figma document tree hierarchy.
// Nodes can be frames, groups, text, shapes, or other Figma elements, each with their own
// properties such as fills, strokes, geometry, and children.
//
// The document format is loosely typed: any field may be absent. Boolean and opacity
// fields that Figma omits when they hold their default value are modeled as pointers so
// that absence is distinguishable from an explicit false/zero (see IsVisible and
// EffectiveOpacity).
type Node struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Type            string     `json:"type"`
	Visible         *bool      `json:"visible,omitempty"`
	Children        []Node     `json:"children,omitempty"`
	BackgroundColor *Color     `json:"backgroundColor,omitempty"`
	Fills           []Paint    `json:"fills,omitempty"`
	Strokes         []Paint    `json:"strokes,omitempty"`
	StrokeWeight    float64    `json:"strokeWeight,omitempty"`
	CornerRadius    float64    `json:"cornerRadius,omitempty"`
	Characters      string     `json:"characters,omitempty"`
	Style           *TypeStyle `json:"style,omitempty"`
	Opacity         *float64   `json:"opacity,omitempty"`
	Rotation        float64    `json:"rotation,omitempty"`

	// Both bounding box spellings appear in the wild: the REST file API reports
	// absoluteBoundingBox while exported/condensed documents use boundingBox.
	BoundingBox         *Rectangle `json:"boundingBox,omitempty"`
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
}

// IsVisible reports whether the node is visible. Figma omits the visible field
// when it is true, so absence means visible.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// EffectiveOpacity returns the node opacity, defaulting to 1 when the field is absent.
func (n *Node) EffectiveOpacity() float64 {
	if n.Opacity == nil {
		return 1
	}
	return *n.Opacity
}

// Bounds returns the node's bounding box, preferring the condensed boundingBox
// spelling over absoluteBoundingBox. Returns a zero rectangle when neither is present.
func (n *Node) Bounds() Rectangle {
	if n.BoundingBox != nil {
		return *n.BoundingBox
	}
	if n.AbsoluteBoundingBox != nil {
		return *n.AbsoluteBoundingBox
	}
	return Rectangle{}
}

// HasImageFill reports whether any visible fill references an image.
func (n *Node) HasImageFill() bool {
	for _, f := range n.Fills {
		if f.Type == "IMAGE" && f.IsVisible() {
			return true
		}
	}
	return false
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to the 0-255 range for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node.
// It includes the paint type (SOLID, GRADIENT_LINEAR, IMAGE, etc.), visibility,
// opacity, and color information. Visibility and opacity default to visible/1 when absent.
type Paint struct {
	Type     string   `json:"type"`
	Visible  *bool    `json:"visible,omitempty"`
	Opacity  *float64 `json:"opacity,omitempty"`
	Color    *Color   `json:"color,omitempty"`
	ImageRef string   `json:"imageRef,omitempty"`
}

// IsVisible reports whether the paint is visible. Absence of the field means visible.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// TypeStyle represents text styling properties from Figma.
// It includes font family, weight, size, letter spacing, and text alignment settings.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily"`
	FontPostScriptName  string  `json:"fontPostScriptName"`
	FontWeight          float64 `json:"fontWeight"`
	FontSize            float64 `json:"fontSize"`
	LineHeightPx        float64 `json:"lineHeightPx"`
	LetterSpacing       float64 `json:"letterSpacing"`
	TextAlignHorizontal string  `json:"textAlignHorizontal"`
	TextAlignVertical   string  `json:"textAlignVertical"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Coordinates are in document units; one unit maps to one output pixel.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the rectangle's area in square document units.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
