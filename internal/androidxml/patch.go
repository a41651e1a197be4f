package androidxml

import (
	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// IconAttr is the application attribute naming the launcher icon.
const IconAttr = "android:icon"

// ErrIconPathMissing is returned when manifest/application[0]/@android:icon
// does not exist.
var ErrIconPathMissing = errors.New("manifest has no application android:icon attribute")

// IconRef returns the resource reference for a mipmap icon.
func IconRef(iconName string) string { return "@mipmap/" + iconName }

// PatchIcon points the first <application> element of the manifest at the
// mipmap icon iconName. It mutates doc in place and returns it. The attribute
// must already exist; it is never added.
func PatchIcon(doc *Document, iconName string) (*Document, error) {
	attr, err := iconAttr(doc)
	if err != nil {
		return nil, err
	}
	attr.Value = IconRef(iconName)
	return doc, nil
}

// Icon returns the current android:icon value of the manifest.
func Icon(doc *Document) (string, error) {
	attr, err := iconAttr(doc)
	if err != nil {
		return "", err
	}
	return attr.Value, nil
}

func iconAttr(doc *Document) (*etree.Attr, error) {
	if doc == nil || doc.Document == nil {
		return nil, errors.Wrap(ErrIconPathMissing, "empty document")
	}
	root := doc.Root()
	if root == nil || root.FullTag() != "manifest" {
		return nil, errors.Wrap(ErrIconPathMissing, "root element is not <manifest>")
	}
	app := root.SelectElement("application")
	if app == nil {
		return nil, errors.Wrap(ErrIconPathMissing, "no <application> element")
	}
	attr := app.SelectAttr(IconAttr)
	if attr == nil {
		return nil, errors.Wrap(ErrIconPathMissing, "no android:icon on <application>")
	}
	return attr, nil
}
