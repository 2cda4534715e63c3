// Package xiangqi implements the Xiangqi board, the sentinel-bordered
// storage layout, and the pseudo-legal move generator for all seven
// piece types.
package xiangqi
