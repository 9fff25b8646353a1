package visitor

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_StructVisitor_Visit(t *testing.T) {
	type Employee struct {
		ID      int
		Name    string
		company string
		Active  bool
	}

	emp := Employee{ID: 1, Name: "John Doe", company: "hidden", Active: true}
	fields := ExportedFields(reflect.TypeOf(Employee{}))
	assert.Len(t, fields, 3)
	assert.Len(t, StructFields(reflect.TypeOf(Employee{})), 3)

	for _, value := range []interface{}{emp, &emp} {
		visit, err := StructVisitorOf(value)
		if !assert.Nil(t, err) {
			return
		}
		var names []string
		var values []interface{}
		err = visit(func(key int, value interface{}) (bool, error) {
			names = append(names, fields[key].Name)
			values = append(values, value)
			return true, nil
		})
		assert.Nil(t, err)
		assert.EqualValues(t, []string{"ID", "Name", "Active"}, names)
		assert.EqualValues(t, []interface{}{1, "John Doe", true}, values)
	}

	_, err := StructVisitorOf(1)
	assert.NotNil(t, err)
	var nilEmp *Employee
	_, err = StructVisitorOf(nilEmp)
	assert.NotNil(t, err)
}
