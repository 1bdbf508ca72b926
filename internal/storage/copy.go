package storage

import "fmt"

// Copy holds the dashboard's static text, read once at startup. A missing
// file is fatal for the caller.
type Copy struct {
	Title string
	About string
	HowTo string
}

func LoadCopy(store AssetStore) (Copy, error) {
	var c Copy
	var err error
	if c.Title, err = store.ReadText("title.txt"); err != nil {
		return Copy{}, fmt.Errorf("title.txt: %w", err)
	}
	if c.About, err = store.ReadText("about.txt"); err != nil {
		return Copy{}, fmt.Errorf("about.txt: %w", err)
	}
	if c.HowTo, err = store.ReadText("howto.txt"); err != nil {
		return Copy{}, fmt.Errorf("howto.txt: %w", err)
	}
	return c, nil
}
