package msbuild

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"github.com/lerenn/dotnet-prune/pkg/fs"
)

// Element and attribute names understood by this package.
const (
	PackageReferenceElement = "PackageReference"
	ProjectReferenceElement = "ProjectReference"
	SolutionProjectElement  = "Project"
	VersionElement          = "Version"

	IncludeAttribute = "Include"
	VersionAttribute = "Version"
	PathAttribute    = "Path"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PackageEntry is a PackageReference element as written in the document.
type PackageEntry struct {
	Include string
	Version string
}

// Document is a parsed MSBuild or slnx XML document.
type Document struct {
	path string
	tree *etree.Document
	bom  bool
}

// Load reads and parses the document at path.
func Load(fsys fs.FS, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse parses data as the document stored at path.
func Parse(path string, data []byte) (*Document, error) {
	bom := bytes.HasPrefix(data, utf8BOM)
	if bom {
		data = data[len(utf8BOM):]
	}

	tree := etree.NewDocument()
	// Keep apostrophes in MSBuild conditions unescaped.
	tree.WriteSettings.CanonicalAttrVal = true
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidXML, path, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoRootElement, path)
	}

	return &Document{path: path, tree: tree, bom: bom}, nil
}

// Path returns the file the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// PackageReferences returns every PackageReference element at any depth, in document order.
// The version comes from the Version attribute, or from a Version child element.
func (d *Document) PackageReferences() []PackageEntry {
	elements := d.descendants(PackageReferenceElement)
	entries := make([]PackageEntry, 0, len(elements))
	for _, el := range elements {
		entry := PackageEntry{
			Include: el.SelectAttrValue(IncludeAttribute, ""),
			Version: el.SelectAttrValue(VersionAttribute, ""),
		}
		if entry.Version == "" {
			if child := el.SelectElement(VersionElement); child != nil {
				entry.Version = child.Text()
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// ProjectReferences returns the Include attribute of every ProjectReference element.
func (d *Document) ProjectReferences() []string {
	return d.attributeValues(ProjectReferenceElement, IncludeAttribute)
}

// SolutionProjects returns the Path attribute of every Project element of a .slnx document.
func (d *Document) SolutionProjects() []string {
	return d.attributeValues(SolutionProjectElement, PathAttribute)
}

// RemovePackageReferences removes every PackageReference whose Include equals name.
// It returns the number of removed elements.
func (d *Document) RemovePackageReferences(name string) int {
	return d.removeMatching(PackageReferenceElement, name)
}

// RemoveProjectReferences removes every ProjectReference whose Include equals path.
// It returns the number of removed elements.
func (d *Document) RemoveProjectReferences(path string) int {
	return d.removeMatching(ProjectReferenceElement, path)
}

// Bytes serialises the whole document, restoring a leading BOM when the source had one.
func (d *Document) Bytes() ([]byte, error) {
	data, err := d.tree.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialise %s: %w", d.path, err)
	}
	if d.bom {
		data = append(append([]byte{}, utf8BOM...), data...)
	}
	return data, nil
}

// Save writes the document back to its path, keeping the file mode.
func (d *Document) Save(fsys fs.FS) error {
	info, err := fsys.Stat(d.path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", d.path, err)
	}

	data, err := d.Bytes()
	if err != nil {
		return err
	}

	if err := fsys.WriteFileAtomic(d.path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	return nil
}

func (d *Document) attributeValues(element, attribute string) []string {
	elements := d.descendants(element)
	values := make([]string, 0, len(elements))
	for _, el := range elements {
		values = append(values, el.SelectAttrValue(attribute, ""))
	}
	return values
}

func (d *Document) removeMatching(element, include string) int {
	removed := 0
	for _, el := range d.descendants(element) {
		if el.SelectAttrValue(IncludeAttribute, "") != include {
			continue
		}
		if parent := el.Parent(); parent != nil {
			parent.RemoveChild(el)
			removed++
		}
	}
	return removed
}

// descendants returns the elements named tag below the document, depth first
// in document order.
func (d *Document) descendants(tag string) []*etree.Element {
	var found []*etree.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		for _, child := range el.ChildElements() {
			if child.Tag == tag {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(&d.tree.Element)
	return found
}
