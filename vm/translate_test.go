package vm_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"teleivo/nand2tetris/vm"
)

var _ = Describe("Translator", func() {
	var (
		mockCtrl *gomock.Controller
		gen      *MockGenerator
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		gen = NewMockGenerator(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	unit := func(name, src string) vm.Unit {
		return vm.Unit{Name: name, Source: strings.NewReader(src)}
	}

	It("should feed commands in order and announce every unit", func() {
		gomock.InOrder(
			gen.EXPECT().SetFileName("Main.vm"),
			gen.EXPECT().WriteFunction("Main.main", 1).Return(nil),
			gen.EXPECT().WritePushPop(vm.KindPush, "constant", 7).Return(nil),
			gen.EXPECT().WritePushPop(vm.KindPop, "local", 0).Return(nil),
			gen.EXPECT().WriteLabel("LOOP").Return(nil),
			gen.EXPECT().WriteArithmetic("not").Return(nil),
			gen.EXPECT().WriteIf("LOOP").Return(nil),
			gen.EXPECT().WriteGoto("END").Return(nil),
			gen.EXPECT().WriteCall("Math.abs", 1).Return(nil),
			gen.EXPECT().WriteReturn().Return(nil),
			gen.EXPECT().SetFileName("Math.vm"),
			gen.EXPECT().WriteFunction("Math.abs", 0).Return(nil),
			gen.EXPECT().WriteReturn().Return(nil),
		)

		stats, err := vm.NewTranslator(gen).Translate([]vm.Unit{
			unit("Main.vm", `
function Main.main 1 // entry
push constant 7
pop local 0
label LOOP
not
if-goto LOOP
goto END
call Math.abs 1
return
`),
			unit("Math.vm", "function Math.abs 0\nreturn\n"),
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Bootstrap).To(BeFalse())
		Expect(stats.Units).To(Equal([]vm.UnitStats{
			{Name: "Main.vm", Commands: 9, Functions: 1},
			{Name: "Math.vm", Commands: 2, Functions: 1},
		}))
	})

	It("should write the bootstrap code first if Sys.init is declared", func() {
		gomock.InOrder(
			gen.EXPECT().WriteInit().Return(nil),
			gen.EXPECT().SetFileName("Main.vm"),
			gen.EXPECT().WriteFunction("Main.main", 0).Return(nil),
			gen.EXPECT().SetFileName("Sys.vm"),
			gen.EXPECT().WriteFunction("Sys.init", 0).Return(nil),
			gen.EXPECT().WriteCall("Main.main", 0).Return(nil),
		)

		stats, err := vm.NewTranslator(gen).Translate([]vm.Unit{
			unit("Main.vm", "function Main.main 0"),
			unit("Sys.vm", "function Sys.init 0\ncall Main.main 0"),
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Bootstrap).To(BeTrue())
	})

	It("should not write the bootstrap code for a call to Sys.init only", func() {
		gen.EXPECT().SetFileName("Main.vm")
		gen.EXPECT().WriteCall("Sys.init", 0).Return(nil)

		_, err := vm.NewTranslator(gen).Translate([]vm.Unit{
			unit("Main.vm", "call Sys.init 0"),
		})

		Expect(err).NotTo(HaveOccurred())
	})

	It("should always write the bootstrap code if asked to", func() {
		gomock.InOrder(
			gen.EXPECT().WriteInit().Return(nil),
			gen.EXPECT().SetFileName("Main.vm"),
			gen.EXPECT().WriteArithmetic("add").Return(nil),
		)

		_, err := vm.NewTranslator(gen, vm.WithBootstrap(vm.BootstrapAlways)).Translate([]vm.Unit{
			unit("Main.vm", "add"),
		})

		Expect(err).NotTo(HaveOccurred())
	})

	It("should never write the bootstrap code if asked to", func() {
		gen.EXPECT().SetFileName("Sys.vm")
		gen.EXPECT().WriteFunction("Sys.init", 0).Return(nil)

		stats, err := vm.NewTranslator(gen, vm.WithBootstrap(vm.BootstrapNever)).Translate([]vm.Unit{
			unit("Sys.vm", "function Sys.init 0"),
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Bootstrap).To(BeFalse())
	})

	It("should stop at the first generator error", func() {
		gomock.InOrder(
			gen.EXPECT().SetFileName("Main.vm"),
			gen.EXPECT().WritePushPop(vm.KindPush, "heap", 1).Return(&vm.ParseError{Text: "heap", Msg: "unknown segment"}),
		)

		_, err := vm.NewTranslator(gen).Translate([]vm.Unit{
			unit("Main.vm", "push heap 1\nadd"),
			unit("Other.vm", "add"),
		})

		var perr *vm.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("Main.vm"))
		Expect(err.Error()).To(ContainSubstring("push heap 1"))
	})

	It("should not generate anything if a unit is malformed", func() {
		_, err := vm.NewTranslator(gen).Translate([]vm.Unit{
			unit("Main.vm", "push constant 1"),
			unit("Bad.vm", "push constant 1\npop local\n"),
		})

		var perr *vm.ParseError
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Line).To(Equal(2))
		Expect(err.Error()).To(ContainSubstring("Bad.vm"))
	})

	It("should log progress at debug level", func() {
		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
		gen.EXPECT().SetFileName("Main.vm")
		gen.EXPECT().WriteArithmetic("add").Return(nil)

		_, err := vm.NewTranslator(gen, vm.WithLogger(logger)).Translate([]vm.Unit{
			unit("Main.vm", "add"),
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(logs.String()).To(ContainSubstring("unit=Main.vm"))
	})
})

var _ = Describe("Translate", func() {
	It("should count emitted instructions", func() {
		stats, err := vm.Translate(io.Discard, []vm.Unit{
			{Name: "Main.vm", Source: strings.NewReader("push constant 7\npush constant 8\nadd\n")},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.Instructions).To(Equal(7 + 7 + 10))
	})

	It("should keep counters across units", func() {
		var out bytes.Buffer
		_, err := vm.Translate(&out, []vm.Unit{
			{Name: "A.vm", Source: strings.NewReader("eq\n")},
			{Name: "B.vm", Source: strings.NewReader("eq\n")},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("(COMPARE_TRUE_0)"))
		Expect(out.String()).To(ContainSubstring("(COMPARE_TRUE_1)"))
	})
})

var _ = Describe("ParseBootstrap", func() {
	It("should parse all modes", func() {
		for _, mode := range []vm.Bootstrap{vm.BootstrapAuto, vm.BootstrapAlways, vm.BootstrapNever} {
			got, err := vm.ParseBootstrap(mode.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(mode))
		}
	})

	It("should reject unknown modes", func() {
		_, err := vm.ParseBootstrap("sometimes")
		Expect(err).To(HaveOccurred())
	})
})
