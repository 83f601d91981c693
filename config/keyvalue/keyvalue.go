// Package keyvalue renders a go-simpler/env tagged configuration struct as a
// sorted list of key/values, and as a shell script that exports them.
package keyvalue

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// KV is a key/value pair.
type KV struct{ Key, Value string }

// KVSlice is a collection of key/value pairs.
type KVSlice []KV

// EnvKV collects the `env` tagged fields of cfg, which may be a struct or a
// pointer to one. Untagged embedded structs are walked into.
func EnvKV(cfg any) (m KVSlice) { return envKV(reflect.ValueOf(cfg)) }

func envKV(v reflect.Value) (m KVSlice) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f, fv := t.Field(i), v.Field(i)
		k := f.Tag.Get("env")
		if k == "" {
			if f.Anonymous {
				m = append(m, envKV(fv)...)
			}
			continue
		}
		var val string
		switch {
		case fv.Kind() == reflect.String:
			val = fv.String()
		case fv.Kind() == reflect.Slice && fv.Type().Elem().Kind() == reflect.String:
			parts := make([]string, fv.Len())
			for j := range parts {
				parts[j] = fv.Index(j).String()
			}
			val = strings.Join(parts, ",")
		default:
			// fmt reads the value through reflection, so unexported embedded
			// structs do not need Interface.
			val = fmt.Sprint(fv)
		}
		m = append(m, KV{k, val})
	}
	return
}

// Sort orders the pairs by key.
func (kv KVSlice) Sort() KVSlice {
	sort.Slice(kv, func(i, j int) bool { return kv[i].Key < kv[j].Key })
	return kv
}

// PrintEnv writes cfg as a bash script of export statements.
func PrintEnv(cfg any, w io.Writer) {
	_, _ = fmt.Fprintln(w, "#!/usr/bin/env bash")
	for _, v := range EnvKV(cfg).Sort() {
		val := v.Value
		if strings.ContainsAny(val, " \t'\"$\\") {
			val = strconv.Quote(val)
		}
		_, _ = fmt.Fprintf(w, "export %s=%s\n", v.Key, val)
	}
}
