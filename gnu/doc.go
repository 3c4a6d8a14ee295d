// Package gnu locates an installed GNU ARM cross toolchain and
// derives the multilib library and include search paths for a
// translated target. It never invokes the compiler; everything is
// computed from the descriptor and the installation layout.
package gnu
