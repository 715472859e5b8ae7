/*
Package fetch contains helpers for performing rate-limited HTTP requests.

Subpackages:
  - queue: Priority-aware admission queue bounding concurrent requests
*/
package fetch
