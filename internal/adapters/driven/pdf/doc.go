// Package pdf provides the PDF adapters: a text-layer reader backed by
// ledongthuc/pdf and a page rasteriser that shells out to pdftoppm.
//
// The rasteriser requires poppler-utils to be installed:
//   - macOS: brew install poppler
//   - Ubuntu/Debian: apt install poppler-utils
//   - Fedora/RHEL: dnf install poppler-utils
package pdf
