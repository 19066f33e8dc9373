package htmlkit

import "strings"

// Document assembly: the resolver's output feeds the page in a fixed order.
//
//  1. preload resource links
//  2. stylesheet links
//  3. preload links for LoadingPreload scripts
//  4. script tags for normal/async/defer scripts
//  5. the document body (caller's content)
//  6. the actual script tags of LoadingPreload scripts, at the end of the
//     document
//
// Resources go first so the browser can start fetching fonts and images
// before stylesheet parsing blocks; preloaded scripts park their bytes in
// cache up top and execute from the bottom tag once the document exists.

// HeadTags emits sections 1-4 as newline-joined markup for the document
// head.
func HeadTags(pr *PageResources) (string, error) {
	var lines []string

	for _, res := range pr.Resources() {
		tag, err := res.Tag()
		if err != nil {
			return "", err
		}
		lines = append(lines, tag)
	}

	for _, style := range pr.Styles() {
		tag, err := style.Tag()
		if err != nil {
			return "", err
		}
		lines = append(lines, tag)
	}

	scripts := pr.Scripts()
	for _, script := range scripts {
		if !script.Loading.Has(LoadingPreload) {
			continue
		}
		tag, err := script.PreloadLinkTag()
		if err != nil {
			return "", err
		}
		lines = append(lines, tag)
	}

	for _, script := range scripts {
		if script.Loading.Has(LoadingPreload) {
			continue
		}
		tag, err := script.Tag()
		if err != nil {
			return "", err
		}
		lines = append(lines, tag)
	}

	return strings.Join(lines, "\n"), nil
}

// BodyCloseTags emits section 6: the script tags of LoadingPreload
// requirements, to be placed just before the closing body tag.
func BodyCloseTags(pr *PageResources) (string, error) {
	var lines []string

	for _, script := range pr.Scripts() {
		if !script.Loading.Has(LoadingPreload) {
			continue
		}
		tag, err := script.Tag()
		if err != nil {
			return "", err
		}
		lines = append(lines, tag)
	}

	return strings.Join(lines, "\n"), nil
}
