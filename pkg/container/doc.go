/*
Package container holds small generic data structures.

Subpackages:
  - list: Doubly-linked list and slice-backed stack
*/
package container
