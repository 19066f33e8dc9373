package htmlkit

// Per-tag constructors. Each constructor declares its tag string directly;
// there is no reflective naming. Self-closing tags take no children by
// construction, which makes the "self-closing elements have no children"
// invariant a compile-time property for everything built through this table
// (the runtime check in With covers clones).

// Page creates the html root element with a literal <!DOCTYPE html> line
// prefixed to its output.
func Page(children ...Item) *Element {
	e := NewElement("html", children...)
	e.doctype = true
	return e
}

// Script creates a script element defaulting to type='text/javascript'.
func Script(children ...Item) *Element {
	e := NewElement("script", children...)
	e.attrs = Attrs{{Key: "type", Value: "text/javascript"}}
	return e
}

// Style creates a style element defaulting to type='text/css'.
func Style(children ...Item) *Element {
	e := NewElement("style", children...)
	e.attrs = Attrs{{Key: "type", Value: "text/css"}}
	return e
}

// Form creates a form element defaulting to method='POST'.
func Form(children ...Item) *Element {
	e := NewElement("form", children...)
	e.attrs = Attrs{{Key: "method", Value: "POST"}}
	return e
}

func A(children ...Item) *Element          { return NewElement("a", children...) }
func Abbr(children ...Item) *Element       { return NewElement("abbr", children...) }
func Address(children ...Item) *Element    { return NewElement("address", children...) }
func Article(children ...Item) *Element    { return NewElement("article", children...) }
func Aside(children ...Item) *Element      { return NewElement("aside", children...) }
func Audio(children ...Item) *Element      { return NewElement("audio", children...) }
func B(children ...Item) *Element          { return NewElement("b", children...) }
func Bdi(children ...Item) *Element        { return NewElement("bdi", children...) }
func Bdo(children ...Item) *Element        { return NewElement("bdo", children...) }
func Blockquote(children ...Item) *Element { return NewElement("blockquote", children...) }
func Body(children ...Item) *Element       { return NewElement("body", children...) }
func Button(children ...Item) *Element     { return NewElement("button", children...) }
func Canvas(children ...Item) *Element     { return NewElement("canvas", children...) }
func Caption(children ...Item) *Element    { return NewElement("caption", children...) }
func Cite(children ...Item) *Element       { return NewElement("cite", children...) }
func Code(children ...Item) *Element       { return NewElement("code", children...) }
func Colgroup(children ...Item) *Element   { return NewElement("colgroup", children...) }
func Data(children ...Item) *Element       { return NewElement("data", children...) }
func Datalist(children ...Item) *Element   { return NewElement("datalist", children...) }
func Dd(children ...Item) *Element         { return NewElement("dd", children...) }
func Del(children ...Item) *Element        { return NewElement("del", children...) }
func Details(children ...Item) *Element    { return NewElement("details", children...) }
func Dfn(children ...Item) *Element        { return NewElement("dfn", children...) }
func Dialog(children ...Item) *Element     { return NewElement("dialog", children...) }
func Div(children ...Item) *Element        { return NewElement("div", children...) }
func Dl(children ...Item) *Element         { return NewElement("dl", children...) }
func Dt(children ...Item) *Element         { return NewElement("dt", children...) }
func Em(children ...Item) *Element         { return NewElement("em", children...) }
func Fieldset(children ...Item) *Element   { return NewElement("fieldset", children...) }
func Figcaption(children ...Item) *Element { return NewElement("figcaption", children...) }
func Figure(children ...Item) *Element     { return NewElement("figure", children...) }
func Footer(children ...Item) *Element     { return NewElement("footer", children...) }
func H1(children ...Item) *Element         { return NewElement("h1", children...) }
func H2(children ...Item) *Element         { return NewElement("h2", children...) }
func H3(children ...Item) *Element         { return NewElement("h3", children...) }
func H4(children ...Item) *Element         { return NewElement("h4", children...) }
func H5(children ...Item) *Element         { return NewElement("h5", children...) }
func H6(children ...Item) *Element         { return NewElement("h6", children...) }
func Head(children ...Item) *Element       { return NewElement("head", children...) }
func Header(children ...Item) *Element     { return NewElement("header", children...) }
func Hgroup(children ...Item) *Element     { return NewElement("hgroup", children...) }
func HTML(children ...Item) *Element       { return NewElement("html", children...) }
func I(children ...Item) *Element          { return NewElement("i", children...) }
func Iframe(children ...Item) *Element     { return NewElement("iframe", children...) }
func Ins(children ...Item) *Element        { return NewElement("ins", children...) }
func Kbd(children ...Item) *Element        { return NewElement("kbd", children...) }
func Label(children ...Item) *Element      { return NewElement("label", children...) }
func Legend(children ...Item) *Element     { return NewElement("legend", children...) }
func Li(children ...Item) *Element         { return NewElement("li", children...) }
func Main(children ...Item) *Element       { return NewElement("main", children...) }
func MapEl(children ...Item) *Element      { return NewElement("map", children...) }
func Mark(children ...Item) *Element       { return NewElement("mark", children...) }
func Menu(children ...Item) *Element       { return NewElement("menu", children...) }
func Meter(children ...Item) *Element      { return NewElement("meter", children...) }
func Nav(children ...Item) *Element        { return NewElement("nav", children...) }
func Noscript(children ...Item) *Element   { return NewElement("noscript", children...) }
func Object(children ...Item) *Element     { return NewElement("object", children...) }
func Ol(children ...Item) *Element         { return NewElement("ol", children...) }
func Optgroup(children ...Item) *Element   { return NewElement("optgroup", children...) }
func Option(children ...Item) *Element     { return NewElement("option", children...) }
func Output(children ...Item) *Element     { return NewElement("output", children...) }
func P(children ...Item) *Element          { return NewElement("p", children...) }
func Picture(children ...Item) *Element    { return NewElement("picture", children...) }
func Pre(children ...Item) *Element        { return NewElement("pre", children...) }
func Progress(children ...Item) *Element   { return NewElement("progress", children...) }
func Q(children ...Item) *Element          { return NewElement("q", children...) }
func Rp(children ...Item) *Element         { return NewElement("rp", children...) }
func Rt(children ...Item) *Element         { return NewElement("rt", children...) }
func Ruby(children ...Item) *Element       { return NewElement("ruby", children...) }
func S(children ...Item) *Element          { return NewElement("s", children...) }
func Samp(children ...Item) *Element       { return NewElement("samp", children...) }
func Search(children ...Item) *Element     { return NewElement("search", children...) }
func Section(children ...Item) *Element    { return NewElement("section", children...) }
func Select(children ...Item) *Element     { return NewElement("select", children...) }
func Slot(children ...Item) *Element       { return NewElement("slot", children...) }
func Small(children ...Item) *Element      { return NewElement("small", children...) }
func Span(children ...Item) *Element       { return NewElement("span", children...) }
func Strong(children ...Item) *Element     { return NewElement("strong", children...) }
func Sub(children ...Item) *Element        { return NewElement("sub", children...) }
func Summary(children ...Item) *Element    { return NewElement("summary", children...) }
func Sup(children ...Item) *Element        { return NewElement("sup", children...) }
func Table(children ...Item) *Element      { return NewElement("table", children...) }
func Tbody(children ...Item) *Element      { return NewElement("tbody", children...) }
func Td(children ...Item) *Element         { return NewElement("td", children...) }
func Template(children ...Item) *Element   { return NewElement("template", children...) }
func Textarea(children ...Item) *Element   { return NewElement("textarea", children...) }
func Tfoot(children ...Item) *Element      { return NewElement("tfoot", children...) }
func Th(children ...Item) *Element         { return NewElement("th", children...) }
func Thead(children ...Item) *Element      { return NewElement("thead", children...) }
func Time(children ...Item) *Element       { return NewElement("time", children...) }
func Title(children ...Item) *Element      { return NewElement("title", children...) }
func Tr(children ...Item) *Element         { return NewElement("tr", children...) }
func U(children ...Item) *Element          { return NewElement("u", children...) }
func Ul(children ...Item) *Element         { return NewElement("ul", children...) }
func Var(children ...Item) *Element        { return NewElement("var", children...) }
func Video(children ...Item) *Element      { return NewElement("video", children...) }

// Self-closing (void) tags.

func Area() *Element   { return NewVoidElement("area") }
func Base() *Element   { return NewVoidElement("base") }
func Br() *Element     { return NewVoidElement("br") }
func Col() *Element    { return NewVoidElement("col") }
func Embed() *Element  { return NewVoidElement("embed") }
func Hr() *Element     { return NewVoidElement("hr") }
func Img() *Element    { return NewVoidElement("img") }
func Input() *Element  { return NewVoidElement("input") }
func Link() *Element   { return NewVoidElement("link") }
func Meta() *Element   { return NewVoidElement("meta") }
func Source() *Element { return NewVoidElement("source") }
func Track() *Element  { return NewVoidElement("track") }
func Wbr() *Element    { return NewVoidElement("wbr") }
