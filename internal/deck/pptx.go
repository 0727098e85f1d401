package deck

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// bulletsPerSlide caps how many summary sentences appear on one content
// slide before a new slide is started.
const bulletsPerSlide = 6

// PPTXRenderer implements Renderer by emitting a minimal OOXML presentation
// (title slide plus bulleted content slides) directly through archive/zip.
type PPTXRenderer struct {
	logger *slog.Logger
}

var _ Renderer = (*PPTXRenderer)(nil)

// NewPPTXRenderer creates a new PPTXRenderer.
func NewPPTXRenderer(logger *slog.Logger) *PPTXRenderer {
	return &PPTXRenderer{
		logger: logger.With("component", "pptx_renderer"),
	}
}

// Render writes the deck into outputDir and returns its path.
func (r *PPTXRenderer) Render(ctx context.Context, summary string, originalFilename string, outputDir string) (string, error) {
	filename := DeriveOutputFilename(originalFilename)
	path := filepath.Join(outputDir, filename)

	title := titleFromFilename(originalFilename)
	bullets := splitSentences(summary)

	var buf bytes.Buffer
	if err := writePresentation(&buf, title, bullets); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o640); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	r.logger.Debug("slide deck rendered",
		"path", path,
		"slide_count", 1+(len(bullets)+bulletsPerSlide-1)/bulletsPerSlide)
	return path, nil
}

// DeriveOutputFilename builds the client-facing artifact name from the
// original document name: stem plus a short unique suffix, so simultaneous
// submissions of the same document never collide.
func DeriveOutputFilename(originalFilename string) string {
	base := filepath.Base(originalFilename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == ".." {
		stem = "document"
	}
	return fmt.Sprintf("%s_summary_%s.pptx", stem, uuid.NewString()[:8])
}

// titleFromFilename turns the original filename into a deck title.
func titleFromFilename(originalFilename string) string {
	base := filepath.Base(originalFilename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return "Document Summary"
	}
	return fmt.Sprintf("Summary of %s", stem)
}

// splitSentences breaks the summary into bullet-sized lines on sentence
// boundaries. The summary text is plain prose; this split is presentation
// only and loses nothing.
func splitSentences(summary string) []string {
	var sentences []string
	var sb strings.Builder

	for _, r := range strings.TrimSpace(summary) {
		sb.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			if s := strings.TrimSpace(sb.String()); s != "" {
				sentences = append(sentences, s)
			}
			sb.Reset()
		}
	}
	if s := strings.TrimSpace(sb.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// writePresentation assembles the OOXML package into w.
func writePresentation(w *bytes.Buffer, title string, bullets []string) error {
	contentSlides := chunkBullets(bullets)
	slideCount := 1 + len(contentSlides)

	zw := zip.NewWriter(w)

	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", contentTypesXML(slideCount)},
		{"_rels/.rels", rootRelsXML},
		{"ppt/presentation.xml", presentationXML(slideCount)},
		{"ppt/_rels/presentation.xml.rels", presentationRelsXML(slideCount)},
		{"ppt/slideMasters/slideMaster1.xml", slideMasterXML},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", slideMasterRelsXML},
		{"ppt/slideLayouts/slideLayout1.xml", slideLayoutXML},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", slideLayoutRelsXML},
		{"ppt/theme/theme1.xml", themeXML},
	}

	parts = append(parts, struct {
		name string
		body string
	}{"ppt/slides/slide1.xml", titleSlideXML(title)})

	for i, slideBullets := range contentSlides {
		parts = append(parts, struct {
			name string
			body string
		}{
			fmt.Sprintf("ppt/slides/slide%d.xml", i+2),
			contentSlideXML("Summary", slideBullets),
		})
	}

	for i := 1; i <= slideCount; i++ {
		parts = append(parts, struct {
			name string
			body string
		}{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i), slideRelsXML})
	}

	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return err
		}
		if _, err := f.Write([]byte(part.body)); err != nil {
			return err
		}
	}

	return zw.Close()
}

// chunkBullets groups bullets into per-slide batches. An empty summary
// still yields one content slide so the deck is never title-only.
func chunkBullets(bullets []string) [][]string {
	if len(bullets) == 0 {
		return [][]string{{""}}
	}

	var chunks [][]string
	for start := 0; start < len(bullets); start += bulletsPerSlide {
		end := start + bulletsPerSlide
		if end > len(bullets) {
			end = len(bullets)
		}
		chunks = append(chunks, bullets[start:end])
	}
	return chunks
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

func contentTypesXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">`)
	sb.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	sb.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	sb.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	sb.WriteString(`</Types>`)
	return sb.String()
}

const rootRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>` +
	`</Relationships>`

func presentationXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	sb.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	sb.WriteString(`<p:sldIdLst>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+1)
	}
	sb.WriteString(`</p:sldIdLst>`)
	sb.WriteString(`<p:sldSz cx="9144000" cy="6858000"/><p:notesSz cx="6858000" cy="9144000"/>`)
	sb.WriteString(`</p:presentation>`)
	return sb.String()
}

func presentationRelsXML(slideCount int) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	sb.WriteString(`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 1; i <= slideCount; i++ {
		fmt.Fprintf(&sb, `<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+1, i)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}

const emptySpTree = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`

const slideMasterXML = xmlHeader +
	`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
	`<p:cSld>` + emptySpTree + `</p:spTree></p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideMasterRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

const slideLayoutXML = xmlHeader +
	`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">` +
	`<p:cSld>` + emptySpTree + `</p:spTree></p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slideLayoutRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

const slideRelsXML = xmlHeader +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>` +
	`</Relationships>`

// themeXML is the smallest theme PowerPoint accepts: one color scheme, one
// font scheme, and the three mandatory format-style lists.
const themeXML = xmlHeader +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Office">` +
	`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2>` +
	`<a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1>` +
	`<a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>` +
	`<a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>` +
	`<a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>` +
	`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>` +
	`</a:clrScheme>` +
	`<a:fontScheme name="Office">` +
	`<a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>` +
	`</a:fontScheme>` +
	`<a:fmtScheme name="Office">` +
	`<a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:fillStyleLst>` +
	`<a:lnStyleLst><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln><a:ln><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
	`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
	`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:bgFillStyleLst>` +
	`</a:fmtScheme>` +
	`</a:themeElements>` +
	`</a:theme>`

// titleSlideXML builds the opening slide with the deck title centered.
func titleSlideXML(title string) string {
	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	sb.WriteString(`<p:cSld>` + emptySpTree)
	sb.WriteString(textBoxXML(2, "Title", 457200, 2130425, 8229600, 1325563, []paragraph{
		{text: title, size: 4000, bold: true},
	}))
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}

// contentSlideXML builds a slide with a heading and bulleted body text.
func contentSlideXML(heading string, bullets []string) string {
	paragraphs := make([]paragraph, 0, len(bullets))
	for _, b := range bullets {
		paragraphs = append(paragraphs, paragraph{text: b, size: 1800, bullet: true})
	}

	var sb strings.Builder
	sb.WriteString(xmlHeader)
	sb.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	sb.WriteString(`<p:cSld>` + emptySpTree)
	sb.WriteString(textBoxXML(2, "Heading", 457200, 274638, 8229600, 1143000, []paragraph{
		{text: heading, size: 2800, bold: true},
	}))
	sb.WriteString(textBoxXML(3, "Body", 457200, 1600200, 8229600, 4525963, paragraphs))
	sb.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return sb.String()
}

type paragraph struct {
	text   string
	size   int // hundredths of a point
	bold   bool
	bullet bool
}

// textBoxXML emits one positioned text shape with the given paragraphs.
// Coordinates are EMUs on a 4:3 slide.
func textBoxXML(id int, name string, x, y, cx, cy int, paragraphs []paragraph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<p:sp><p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, id, name)
	fmt.Fprintf(&sb, `<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`, x, y, cx, cy)
	sb.WriteString(`<p:txBody><a:bodyPr wrap="square"><a:normAutofit/></a:bodyPr><a:lstStyle/>`)
	for _, p := range paragraphs {
		sb.WriteString(`<a:p>`)
		if p.bullet {
			sb.WriteString(`<a:pPr><a:buChar char="&#8226;"/></a:pPr>`)
		}
		bold := "0"
		if p.bold {
			bold = "1"
		}
		fmt.Fprintf(&sb, `<a:r><a:rPr lang="en-US" sz="%d" b="%s"/><a:t>%s</a:t></a:r>`, p.size, bold, escapeXML(p.text))
		sb.WriteString(`</a:p>`)
	}
	sb.WriteString(`</p:txBody></p:sp>`)
	return sb.String()
}
