package command

import (
	"errors"
	"strconv"
	"strings"
)

// 分发阶段错误，沿用面向操作员的原文提示；领域错误由各处理函数原样透传
var (
	ErrInvalidCommand       = errors.New("Command is invalid.")
	ErrCommandNotFound      = errors.New("Command not found.")
	ErrArityMismatch        = errors.New("Number of arguments doesn't match to parameters of the command.")
	ErrArgumentTypeMismatch = errors.New("An argument type doesn't match to the parameter type of the command.")
)

// ParamType 命令参数类型标签
type ParamType int

const (
	// ParamString 字符串参数，原样传递
	ParamString ParamType = iota
	// ParamInt 整数参数，十进制解析
	ParamInt
)

// Handler 命令处理函数，入参已按声明的参数类型完成转换
type Handler func(args []interface{}) (string, error)

// operation 一条已注册的命令：参数类型序列 + 处理函数
type operation struct {
	params  []ParamType
	handler Handler
}

// 按类型标签转换参数，替代运行时反射
var argParsers = map[ParamType]func(string) (interface{}, error){
	ParamString: func(s string) (interface{}, error) {
		return s, nil
	},
	ParamInt: func(s string) (interface{}, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	},
}

// Dispatcher 文本命令分发器。自身无状态、可并发调用，
// 状态变更全部发生在被调用的处理函数内。
type Dispatcher struct {
	operations map[string]operation
}

// NewDispatcher 创建分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		operations: make(map[string]operation),
	}
}

// Register 注册命令，verb 统一转为小写作为查找键
func (d *Dispatcher) Register(verb string, params []ParamType, handler Handler) {
	d.operations[strings.ToLower(verb)] = operation{
		params:  params,
		handler: handler,
	}
}

// Execute 解析并执行一行命令，返回处理函数的文本结果。
// 转换失败时处理函数不会被调用，不存在部分执行。
func (d *Dispatcher) Execute(raw string) (string, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return "", ErrInvalidCommand
	}

	verb := strings.ToLower(tokens[0])
	op, ok := d.operations[verb]
	if !ok {
		return "", ErrCommandNotFound
	}

	rawArgs := tokens[1:]
	if len(rawArgs) != len(op.params) {
		return "", ErrArityMismatch
	}

	args := make([]interface{}, len(rawArgs))
	for i, rawArg := range rawArgs {
		parsed, err := argParsers[op.params[i]](rawArg)
		if err != nil {
			return "", ErrArgumentTypeMismatch
		}
		args[i] = parsed
	}

	return op.handler(args)
}
