package gen

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"fixdict-generator/internal/diagnostic"
	"fixdict-generator/internal/plan"
)

type templateData struct {
	pkg      *packageData
	messages []*messageData
	enums    *enumFileData
}

type fileData struct {
	Header   string
	Package  string
	Version  string
	Runtime  runtimeRef
	Comments bool
}

type packageData struct {
	fileData
	BeginString string
	Routes      []routeData
}

type routeData struct {
	MsgType       string
	Name          string
	TypeName      string
	Handler       string
	HandlerMethod string
}

type messageData struct {
	fileData
	Filename   string
	UsesTime   bool
	UsesEnum   bool
	EnumImport string
	Message    *classData
	Groups     []*classData
}

type classData struct {
	RT            string
	Comments      bool
	TypeName      string
	Name          string
	Path          string
	Parent        string
	IsMessage     bool
	MsgType       string
	MsgCategory   string
	Handler       string
	HandlerMethod string
	// Fields are in struct order: required scalars, optional scalars, groups.
	Fields []fieldData
	// Decode lists every item in declared order.
	Decode []fieldData
	// Scalars and Groups keep declared order.
	Scalars []fieldData
	Groups  []fieldData
}

type fieldData struct {
	GoName   string
	Name     string
	Tag      int
	Required bool
	IsGroup  bool
	Type     string
	ElemType string
	Parse    string
	// FormatExpr renders the field of receiver m as its wire string.
	FormatExpr string
}

type enumFileData struct {
	fileData
	Enums []enumData
}

type enumData struct {
	Name       string
	FieldName  string
	Tag        int
	RawType    string
	Underlying string
	Converter  string
	Members    []plan.EnumMember
	Distinct   string
}

func (g *Generator) buildTemplateData(s *plan.Schema) (*templateData, error) {
	pkg := g.PackageName(s)
	base := fileData{
		Header:   Header,
		Package:  pkg,
		Version:  s.Revision.Version(),
		Runtime:  newRuntimeRef(g.config.RuntimeImport),
		Comments: g.config.GenerateComments,
	}

	enumImport := path.Join(g.config.ImportPath, pkg, EnumPackage)

	enums, err := g.buildEnums(s, base)
	if err != nil {
		return nil, err
	}

	data := &templateData{
		pkg: &packageData{
			fileData:    base,
			BeginString: s.Revision.BeginString(),
		},
		enums: enums,
	}

	names := newNameSet(pkg, packageAPI...)
	files := map[string]string{pkg + ".go": "the package API"}
	prefix := s.Revision.HandlerPrefix()

	for _, msg := range s.Messages {
		md := &messageData{fileData: base, EnumImport: enumImport}

		md.Message, err = g.buildClass(s, msg, md)
		if err != nil {
			return nil, err
		}

		md.Message.Handler = md.Message.TypeName + "Handler"
		md.Message.HandlerMethod = prefix + md.Message.TypeName

		if err := names.declare(md.Message.TypeName, msg.Location()); err != nil {
			return nil, err
		}

		if err := names.declare(md.Message.Handler, msg.Location()); err != nil {
			return nil, err
		}

		for _, group := range msg.Descendants() {
			cd, err := g.buildClass(s, group, md)
			if err != nil {
				return nil, err
			}

			if err := names.declare(cd.TypeName, group.Location()); err != nil {
				return nil, err
			}

			md.Groups = append(md.Groups, cd)
		}

		md.Filename = messageFilename(md.Message.TypeName)
		if prev, ok := files[md.Filename]; ok {
			return nil, diagnostic.Errorf(diagnostic.CodeNameCollision, msg.Location(),
				"output file %s is already used by %s", md.Filename, prev)
		}

		if strings.HasSuffix(md.Filename, "_test.go") {
			return nil, diagnostic.Errorf(diagnostic.CodeNameCollision, msg.Location(),
				"output file %s would be compiled as a test", md.Filename)
		}

		files[md.Filename] = msg.Location()

		data.messages = append(data.messages, md)
		data.pkg.Routes = append(data.pkg.Routes, routeData{
			MsgType:       msg.MsgType,
			Name:          msg.Name,
			TypeName:      md.Message.TypeName,
			Handler:       md.Message.Handler,
			HandlerMethod: md.Message.HandlerMethod,
		})
	}

	sort.Slice(data.pkg.Routes, func(i, j int) bool { return data.pkg.Routes[i].MsgType < data.pkg.Routes[j].MsgType })

	return data, nil
}

func (g *Generator) buildClass(s *plan.Schema, c *plan.ClassDef, md *messageData) (*classData, error) {
	cd := &classData{
		RT:          md.Runtime.Alias,
		Comments:    md.Comments,
		TypeName:    classTypeName(c.Path),
		Name:        c.Name,
		Path:        c.Path,
		Parent:      c.Parent,
		IsMessage:   c.IsMessage(),
		MsgType:     c.MsgType,
		MsgCategory: c.MsgCategory,
	}

	rt := md.Runtime.Alias

	var required, optional, groups []fieldData

	for _, item := range c.Items {
		f := fieldData{
			GoName:   plan.ExportedIdent(item.Name),
			Name:     item.Name,
			Tag:      item.Field.Number,
			Required: item.Required,
			IsGroup:  item.IsGroup(),
		}

		if item.IsGroup() {
			f.ElemType = classTypeName(item.Group.Path)
			f.Type = "[]" + f.ElemType
			groups = append(groups, f)
			cd.Groups = append(cd.Groups, f)
			cd.Decode = append(cd.Decode, f)

			continue
		}

		recv := "m." + f.GoName
		if !item.Required {
			recv = "*" + recv
		}

		if e, ok := s.EnumFor(item.Field); ok {
			f.Type = EnumPackage + "." + e.Name
			f.Parse = EnumPackage + ".Parse" + e.Name
			f.FormatExpr = "m." + f.GoName + ".String()"
			md.UsesEnum = true
		} else {
			kind := item.Field.Kind
			f.Type = kind.GoType()
			f.Parse = rt + ".Parse" + kind.Converter()
			f.FormatExpr = fmt.Sprintf("%s.Format%s(%s)", rt, kind.Converter(), recv)
			md.UsesTime = md.UsesTime || kind.IsTemporal()
		}

		if item.Required {
			required = append(required, f)
		} else {
			f.Type = "*" + f.Type
			optional = append(optional, f)
		}

		cd.Scalars = append(cd.Scalars, f)
		cd.Decode = append(cd.Decode, f)
	}

	cd.Fields = append(append(required, optional...), groups...)

	methods := groupMethods
	if cd.IsMessage {
		methods = recordMethods
	}

	if err := checkFields(cd, methods, c.Location()); err != nil {
		return nil, err
	}

	return cd, nil
}

func (g *Generator) buildEnums(s *plan.Schema, base fileData) (*enumFileData, error) {
	out := &enumFileData{fileData: base}
	out.Package = EnumPackage

	names := newNameSet(EnumPackage)

	for _, e := range s.Enums {
		kind := e.Kind()
		ed := enumData{
			Name:       e.Name,
			FieldName:  e.Field.Name,
			Tag:        e.Field.Number,
			RawType:    e.Field.RawType,
			Underlying: kind.EnumGoType(),
			Converter:  kind.EnumConverter(),
			Members:    e.Members,
		}

		location := "field " + e.Field.Name

		for _, ident := range []string{e.Name, "Parse" + e.Name} {
			if err := names.declare(ident, location); err != nil {
				return nil, err
			}
		}

		distinct := make([]string, len(e.Distinct))
		for i, m := range e.Distinct {
			distinct[i] = m.Const
		}

		for _, m := range e.Members {
			if err := names.declare(m.Const, location); err != nil {
				return nil, err
			}
		}

		ed.Distinct = strings.Join(distinct, ", ")
		out.Enums = append(out.Enums, ed)
	}

	return out, nil
}
