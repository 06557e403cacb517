// Package vfs provides staging filesystem implementations behind the
// convertd.FS capability.
//
// Mem keeps everything in memory and backs tests and fake engines. Dir roots
// the staging tree at a host directory so a sandboxed engine can be handed
// the same files through a mount. Both accept the virtual paths used by the
// staging layout ("/working/...").
package vfs
