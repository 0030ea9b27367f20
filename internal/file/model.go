// Package file implements the hierarchical file-metadata store: folders and
// leaf files/images owned by an account, with per-record visibility and an
// optional reference into content storage.
package file

import "time"

// Kind is the type of a file node.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
	KindImage  Kind = "image"
)

// ParseKind validates a client-supplied type string.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindFolder, KindFile, KindImage:
		return Kind(s), true
	}
	return "", false
}

// HasContent reports whether nodes of this kind carry a content blob.
// Folders never do.
func (k Kind) HasContent() bool {
	return k == KindFile || k == KindImage
}

// ParentRef is a tagged reference to a node's parent: either the root (no
// parent) or the id of an existing folder. The zero value is the root, so a
// real folder id can never be confused with the root sentinel.
type ParentRef struct {
	id string
}

// RootParent returns the root reference.
func RootParent() ParentRef { return ParentRef{} }

// FolderParent returns a reference to the folder with the given id.
func FolderParent(id string) ParentRef { return ParentRef{id: id} }

// ParseParentRef maps the external parentId representation to a ParentRef.
// Absent and the literal "0" both mean root.
func ParseParentRef(s string) ParentRef {
	if s == "" || s == "0" {
		return RootParent()
	}
	return FolderParent(s)
}

// IsRoot reports whether the reference is the root.
func (p ParentRef) IsRoot() bool { return p.id == "" }

// FolderID returns the referenced folder id; empty for the root.
func (p ParentRef) FolderID() string { return p.id }

// External returns the client-facing representation: "0" for the root,
// otherwise the folder id.
func (p ParentRef) External() string {
	if p.IsRoot() {
		return "0"
	}
	return p.id
}

// FileNode is a metadata record for a folder or a leaf file/image.
// StorageKey locates the content blob for file/image kinds; it is internal
// and never serialized to clients. OwnerID is immutable after creation;
// IsPublic is the only mutable field.
type FileNode struct {
	ID         string
	OwnerID    string
	Name       string
	Kind       Kind
	IsPublic   bool
	Parent     ParentRef
	StorageKey string
	CreatedAt  time.Time
}
