package debugui

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
)

type FieldInfo struct {
	Name     string
	Type     reflect.Type
	Index    int
	IsStruct bool
}

// ReflectionCache memoizes the exported fields of struct types shown by the
// read-only value viewer.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Type:     field.Type,
				Index:    i,
				IsStruct: field.Type.Kind() == reflect.Struct,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()

// fieldLines flattens v into "Name: value" lines, nesting struct fields with
// a dotted prefix. Types with a String method are printed whole.
func fieldLines(prefix string, v reflect.Value) []string {
	if _, ok := v.Interface().(fmt.Stringer); ok || v.Kind() != reflect.Struct {
		return []string{fmt.Sprintf("%s: %v", prefix, v.Interface())}
	}

	var lines []string
	for _, f := range globalReflectionCache.GetFields(v.Type()) {
		name := f.Name
		if prefix != "" {
			name = prefix + "." + f.Name
		}
		lines = append(lines, fieldLines(name, v.Field(f.Index))...)
	}
	return lines
}

// renderValue shows a struct read-only under a tree node.
func renderValue(label string, value any) {
	if !imgui.TreeNodeStr(label) {
		return
	}
	for _, line := range fieldLines("", reflect.ValueOf(value)) {
		imgui.BulletText(line)
	}
	imgui.TreePop()
}
