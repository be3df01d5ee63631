// Package platform provides cross-platform filesystem operations including
// directory-link creation and permission management. On Unix systems it uses
// native symlinks and chmod directly. On Windows it tries a symlink, then an
// NTFS junction, and finally falls back to copying the tree with a .target
// sidecar when neither is available.
package platform
