package catalog

// Node kinds
const (
	KindFolder = "folder"
	KindFile   = "file"
)

// Node is one entry of the course catalog tree: a filière or niveau Folder,
// or a course File leaf. The tree has exactly two folder levels (filière,
// then niveau) above the leaves.
type Node struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Filiere     string `json:"filiere,omitempty"`
	Niveau      string `json:"niveau,omitempty"`
	Children    []Node `json:"children,omitempty"`
}

var niveauLabels = map[string]string{
	"licence1": "Licence 1",
	"licence2": "Licence 2",
	"licence3": "Licence 3",
}

// NiveauLabel maps known niveau codes to display labels; unknown codes pass
// through verbatim.
func NiveauLabel(code string) string {
	if label, ok := niveauLabels[code]; ok {
		return label
	}
	return code
}

// BuildTree groups flat course records into filière folders holding niveau
// folders holding course leaves. Groups appear in first-encounter order;
// records without filière/niveau fall under the "Autre"/"autre" sentinels.
func BuildTree(courses []Course) []Node {
	filOrder := make([]string, 0)
	nivOrder := make(map[string][]string)
	groups := make(map[string]map[string][]Course)

	for _, c := range courses {
		fil := c.Filiere
		if fil == "" {
			fil = DefaultFiliere
		}
		niv := c.Niveau
		if niv == "" {
			niv = DefaultNiveau
		}
		if _, ok := groups[fil]; !ok {
			groups[fil] = make(map[string][]Course)
			filOrder = append(filOrder, fil)
		}
		if _, ok := groups[fil][niv]; !ok {
			nivOrder[fil] = append(nivOrder[fil], niv)
		}
		groups[fil][niv] = append(groups[fil][niv], c)
	}

	tree := make([]Node, 0, len(filOrder))
	for _, fil := range filOrder {
		filNode := Node{Kind: KindFolder, ID: fil, Name: fil, Filiere: fil}
		for _, niv := range nivOrder[fil] {
			nivNode := Node{
				Kind:    KindFolder,
				ID:      fil + "/" + niv,
				Name:    NiveauLabel(niv),
				Filiere: fil,
				Niveau:  niv,
			}
			for _, c := range groups[fil][niv] {
				nivNode.Children = append(nivNode.Children, Node{
					Kind:        KindFile,
					ID:          c.ID,
					Name:        c.Title,
					Description: c.Description,
					Filiere:     fil,
					Niveau:      niv,
				})
			}
			filNode.Children = append(filNode.Children, nivNode)
		}
		tree = append(tree, filNode)
	}
	return tree
}

// FilterByLevel prunes the tree down to course leaves of the given niveau.
// Folders left without surviving children are removed, transitively; the
// result never contains an empty folder.
func FilterByLevel(nodes []Node, level string) []Node {
	var out []Node
	for _, n := range nodes {
		if n.Kind == KindFile {
			if n.Niveau == level {
				out = append(out, n)
			}
			continue
		}
		children := FilterByLevel(n.Children, level)
		if len(children) == 0 {
			continue
		}
		n.Children = children
		out = append(out, n)
	}
	return out
}

// Flatten walks the tree pre-order (folder before its children, children in
// original order) into a single linear sequence.
func Flatten(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		out = append(out, n)
		out = append(out, Flatten(n.Children)...)
	}
	return out
}

// VisibleNodes flattens the tree skipping the children of collapsed folders.
// The expanded set is owned by the caller; this package holds no view state.
func VisibleNodes(nodes []Node, expanded map[string]bool) []Node {
	var out []Node
	for _, n := range nodes {
		out = append(out, n)
		if n.Kind == KindFolder && expanded[n.ID] {
			out = append(out, VisibleNodes(n.Children, expanded)...)
		}
	}
	return out
}

// CountLeaves returns the number of course leaves in the tree.
func CountLeaves(nodes []Node) int {
	var count int
	for _, n := range nodes {
		if n.Kind == KindFile {
			count++
			continue
		}
		count += CountLeaves(n.Children)
	}
	return count
}
