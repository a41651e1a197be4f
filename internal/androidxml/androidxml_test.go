package androidxml_test

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rnlauncher/internal/androidxml"
)

const sampleManifest = `<?xml version="1.0" encoding="utf-8"?>
<!-- generated by the RN template -->
<manifest xmlns:android="http://schemas.android.com/apk/res/android"
  xmlns:tools="http://schemas.android.com/tools">

    <uses-permission android:name="android.permission.INTERNET" />

    <application
      android:name=".MainApplication"
      android:label="@string/app_name"
      android:icon="@mipmap/old_icon"
      android:roundIcon="@mipmap/ic_launcher_round"
      android:allowBackup="false"
      tools:replace="android:label">
      <!-- main entry -->
      <activity android:name=".MainActivity" android:exported="true">
        <intent-filter>
            <action android:name="android.intent.action.MAIN" />
            <category android:name="android.intent.category.LAUNCHER" />
        </intent-filter>
      </activity>
      <meta-data android:name="note" android:value="a &amp; b &lt;c&gt;"/>
    </application>
</manifest>
`

func parse(t *testing.T, s string) *androidxml.Document {
	t.Helper()
	doc, err := androidxml.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func attrKeys(e *etree.Element) []string {
	keys := make([]string, 0, len(e.Attr))
	for _, a := range e.Attr {
		keys = append(keys, a.FullKey())
	}
	return keys
}

func TestParse_KeepsPrefixesAndOrder(t *testing.T) {
	doc := parse(t, sampleManifest)

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "manifest", root.FullTag())
	assert.Equal(t, []string{"xmlns:android", "xmlns:tools"}, attrKeys(root))

	app := root.SelectElement("application")
	require.NotNil(t, app)
	assert.Equal(t, []string{
		"android:name", "android:label", "android:icon",
		"android:roundIcon", "android:allowBackup", "tools:replace",
	}, attrKeys(app))

	var comments []string
	for _, tok := range doc.Child {
		if c, ok := tok.(*etree.Comment); ok {
			comments = append(comments, c.Data)
		}
	}
	assert.Equal(t, []string{" generated by the RN template "}, comments)
}

func TestParse_SkipsByteOrderMark(t *testing.T) {
	doc := parse(t, "\ufeff"+sampleManifest)

	icon, err := androidxml.Icon(doc)
	require.NoError(t, err)
	assert.Equal(t, "@mipmap/old_icon", icon)

	out, err := androidxml.Marshal(doc)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), androidxml.Header))
}

func TestParse_ByteOrderMarkOnly(t *testing.T) {
	_, err := androidxml.Parse(strings.NewReader("\ufeff"))
	require.ErrorIs(t, err, androidxml.ErrNoRoot)
}

func TestPatchIcon_SetsMipmapReference(t *testing.T) {
	doc := parse(t, sampleManifest)

	out, err := androidxml.PatchIcon(doc, "ic_launcher")
	require.NoError(t, err)
	assert.Same(t, doc, out)

	icon, err := androidxml.Icon(out)
	require.NoError(t, err)
	assert.Equal(t, "@mipmap/ic_launcher", icon)

	round := out.Root().SelectElement("application").SelectAttrValue("android:roundIcon", "")
	assert.Equal(t, "@mipmap/ic_launcher_round", round)
}

func TestPatchIcon_SecondCallWins(t *testing.T) {
	doc := parse(t, sampleManifest)

	_, err := androidxml.PatchIcon(doc, "ic_launcher")
	require.NoError(t, err)
	_, err = androidxml.PatchIcon(doc, "ic_launcher_round")
	require.NoError(t, err)

	icon, err := androidxml.Icon(doc)
	require.NoError(t, err)
	assert.Equal(t, "@mipmap/ic_launcher_round", icon)
}

func TestPatchIcon_MissingPath(t *testing.T) {
	tests := map[string]string{
		"wrong root":     `<resources><application android:icon="x"/></resources>`,
		"no application": `<manifest xmlns:android="a"><uses-sdk/></manifest>`,
		"no icon":        `<manifest xmlns:android="a"><application android:label="x"/></manifest>`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			doc := parse(t, src)
			_, err := androidxml.PatchIcon(doc, "ic_launcher")
			require.ErrorIs(t, err, androidxml.ErrIconPathMissing)
		})
	}

	_, err := androidxml.PatchIcon(nil, "ic_launcher")
	require.ErrorIs(t, err, androidxml.ErrIconPathMissing)
	_, err = androidxml.PatchIcon(&androidxml.Document{}, "ic_launcher")
	require.ErrorIs(t, err, androidxml.ErrIconPathMissing)
}

func TestPatchIcon_NeverAddsAttribute(t *testing.T) {
	doc := parse(t, `<manifest xmlns:android="a"><application android:label="x"/></manifest>`)
	_, err := androidxml.PatchIcon(doc, "ic_launcher")
	require.Error(t, err)
	assert.Equal(t, []string{"android:label"}, attrKeys(doc.Root().SelectElement("application")))
}

func TestMarshal_Layout(t *testing.T) {
	doc := parse(t, `<manifest xmlns:android="a" package="com.demo">
<application android:icon="@mipmap/x"><activity android:name=".Main"/><!--c--><meta-data>v &amp; w</meta-data></application>
</manifest>`)

	b, err := androidxml.Marshal(doc)
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<manifest xmlns:android="a" package="com.demo">
  <application android:icon="@mipmap/x">
    <activity android:name=".Main"/>
    <!--c-->
    <meta-data>v &amp; w</meta-data>
  </application>
</manifest>`
	assert.Equal(t, want, string(b))
}

func TestMarshal_RoundTripIsStable(t *testing.T) {
	first, err := androidxml.Marshal(parse(t, sampleManifest))
	require.NoError(t, err)

	second, err := androidxml.Marshal(parse(t, string(first)))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))

	assert.Contains(t, string(first), `android:value="a &amp; b &lt;c&gt;"`)
	assert.Contains(t, string(first), `<!-- main entry -->`)
	assert.Equal(t, 1, strings.Count(string(first), "<?xml"))
}

func TestMarshal_ReplacesDeclaration(t *testing.T) {
	doc := parse(t, `<?xml version="1.0" encoding="utf-8"?>
<manifest xmlns:android="a"><application android:icon="@mipmap/x"/></manifest>`)

	b, err := androidxml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, androidxml.Header+`
<manifest xmlns:android="a">
  <application android:icon="@mipmap/x"/>
</manifest>`, string(b))
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":        "",
		"only comment": "<!-- nothing -->",
		"unclosed":     `<manifest><application>`,
		"mismatched":   `<manifest></application>`,
		"two roots":    `<a/><b/>`,
		"bad syntax":   `<manifest attr=noquotes/>`,
		"stray text":   `<manifest/>trailing`,
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := androidxml.Parse(strings.NewReader(src))
			require.Error(t, err)
		})
	}

	_, err := androidxml.Parse(strings.NewReader(""))
	require.ErrorIs(t, err, androidxml.ErrNoRoot)
}

func TestMarshal_NoRoot(t *testing.T) {
	_, err := androidxml.Marshal(&androidxml.Document{})
	require.ErrorIs(t, err, androidxml.ErrNoRoot)
}
