package arity

import "github.com/ripplefn/ripple/reactive"

type Computed1Func[T0, O any] func(
	v0 T0,
) O

func Computed1[T0, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	get Computed1Func[T0, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
		)
	})
}

type Effect1Func[T0 any] func(
	v0 T0,
) error

func Effect1[T0 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	run Effect1Func[T0],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
		)
	})
}

type Computed2Func[T0, T1, O any] func(
	v0 T0,
	v1 T1,
) O

func Computed2[T0, T1, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	get Computed2Func[T0, T1, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
		)
	})
}

type Effect2Func[T0, T1 any] func(
	v0 T0,
	v1 T1,
) error

func Effect2[T0, T1 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	run Effect2Func[T0, T1],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
		)
	})
}

type Computed3Func[T0, T1, T2, O any] func(
	v0 T0,
	v1 T1,
	v2 T2,
) O

func Computed3[T0, T1, T2, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	get Computed3Func[T0, T1, T2, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
		)
	})
}

type Effect3Func[T0, T1, T2 any] func(
	v0 T0,
	v1 T1,
	v2 T2,
) error

func Effect3[T0, T1, T2 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	run Effect3Func[T0, T1, T2],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
		)
	})
}

type Computed4Func[T0, T1, T2, T3, O any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
) O

func Computed4[T0, T1, T2, T3, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	get Computed4Func[T0, T1, T2, T3, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
		)
	})
}

type Effect4Func[T0, T1, T2, T3 any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
) error

func Effect4[T0, T1, T2, T3 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	run Effect4Func[T0, T1, T2, T3],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
		)
	})
}

type Computed5Func[T0, T1, T2, T3, T4, O any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
) O

func Computed5[T0, T1, T2, T3, T4, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	get Computed5Func[T0, T1, T2, T3, T4, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
		)
	})
}

type Effect5Func[T0, T1, T2, T3, T4 any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
) error

func Effect5[T0, T1, T2, T3, T4 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	run Effect5Func[T0, T1, T2, T3, T4],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
		)
	})
}

type Computed6Func[T0, T1, T2, T3, T4, T5, O any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
	v5 T5,
) O

func Computed6[T0, T1, T2, T3, T4, T5, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	arg5 reactive.Readable[T5],
	get Computed6Func[T0, T1, T2, T3, T4, T5, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
		)
	})
}

type Effect6Func[T0, T1, T2, T3, T4, T5 any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
	v5 T5,
) error

func Effect6[T0, T1, T2, T3, T4, T5 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	arg5 reactive.Readable[T5],
	run Effect6Func[T0, T1, T2, T3, T4, T5],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
		)
	})
}

type Computed7Func[T0, T1, T2, T3, T4, T5, T6, O any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
	v5 T5,
	v6 T6,
) O

func Computed7[T0, T1, T2, T3, T4, T5, T6, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	arg5 reactive.Readable[T5],
	arg6 reactive.Readable[T6],
	get Computed7Func[T0, T1, T2, T3, T4, T5, T6, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
			arg6.Value(),
		)
	})
}

type Effect7Func[T0, T1, T2, T3, T4, T5, T6 any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
	v5 T5,
	v6 T6,
) error

func Effect7[T0, T1, T2, T3, T4, T5, T6 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	arg5 reactive.Readable[T5],
	arg6 reactive.Readable[T6],
	run Effect7Func[T0, T1, T2, T3, T4, T5, T6],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
			arg6.Value(),
		)
	})
}

type Computed8Func[T0, T1, T2, T3, T4, T5, T6, T7, O any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
	v5 T5,
	v6 T6,
	v7 T7,
) O

func Computed8[T0, T1, T2, T3, T4, T5, T6, T7, O any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	arg5 reactive.Readable[T5],
	arg6 reactive.Readable[T6],
	arg7 reactive.Readable[T7],
	get Computed8Func[T0, T1, T2, T3, T4, T5, T6, T7, O],
) *reactive.Derived[O] {
	return reactive.Computed(rt, func(O) O {
		return get(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
			arg6.Value(),
			arg7.Value(),
		)
	})
}

type Effect8Func[T0, T1, T2, T3, T4, T5, T6, T7 any] func(
	v0 T0,
	v1 T1,
	v2 T2,
	v3 T3,
	v4 T4,
	v5 T5,
	v6 T6,
	v7 T7,
) error

func Effect8[T0, T1, T2, T3, T4, T5, T6, T7 any](
	rt *reactive.Runtime,
	arg0 reactive.Readable[T0],
	arg1 reactive.Readable[T1],
	arg2 reactive.Readable[T2],
	arg3 reactive.Readable[T3],
	arg4 reactive.Readable[T4],
	arg5 reactive.Readable[T5],
	arg6 reactive.Readable[T6],
	arg7 reactive.Readable[T7],
	run Effect8Func[T0, T1, T2, T3, T4, T5, T6, T7],
) *reactive.Computation {
	return reactive.Effect(rt, func() error {
		return run(
			arg0.Value(),
			arg1.Value(),
			arg2.Value(),
			arg3.Value(),
			arg4.Value(),
			arg5.Value(),
			arg6.Value(),
			arg7.Value(),
		)
	})
}
