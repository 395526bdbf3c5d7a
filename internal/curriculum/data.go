package curriculum

// Junior-high math tree (人教版 ordering). Edited together with the textbook
// team; keep declaration order, the pickers show it as-is.
var tree = []gradeUnit{
	{
		Key: "七年级上",
		Chapters: []Chapter{
			{
				Name: "第一章 有理数",
				Sections: []Section{
					{
						Title: "1.1 正数和负数",
						Tags:  []string{"正数与负数", "相反意义的量"},
					},
					{
						Title: "1.2 有理数",
						Tags:  []string{"数轴"},
						Subsections: []Subsection{
							{Title: "1.2.1 相反数", Tags: []string{"相反数"}},
							{Title: "1.2.2 绝对值", Tags: []string{"绝对值"}},
						},
					},
					{
						Title: "1.3 有理数的运算",
						Subsections: []Subsection{
							{Title: "1.3.1 加减法", Tags: []string{"有理数加减法"}},
							{Title: "1.3.2 乘除法", Tags: []string{"有理数乘除法"}},
							{Title: "1.3.3 乘方", Tags: []string{"乘方", "科学记数法"}},
						},
					},
				},
			},
			{
				Name: "第二章 整式的加减",
				Sections: []Section{
					{
						Title: "2.1 整式",
						Tags:  []string{"单项式", "多项式"},
					},
					{
						Title: "2.2 整式的加减",
						Tags:  []string{"合并同类项", "去括号"},
					},
				},
			},
			{
				Name: "第三章 一元一次方程",
				Sections: []Section{
					{
						Title: "3.1 从算式到方程",
						Tags:  []string{"方程的概念", "等式的性质"},
					},
					{
						Title: "3.2 解一元一次方程",
						Subsections: []Subsection{
							{Title: "3.2.1 合并同类项与移项", Tags: []string{"移项", "一元一次方程"}},
							{Title: "3.2.2 去括号与去分母", Tags: []string{"一元一次方程"}},
						},
					},
					{
						Title: "3.3 实际问题与一元一次方程",
						Tags:  []string{"方程应用题"},
					},
				},
			},
		},
	},
	{
		Key: "七年级下",
		Chapters: []Chapter{
			{
				Name: "第五章 相交线与平行线",
				Sections: []Section{
					{
						Title: "5.1 相交线",
						Tags:  []string{"对顶角", "垂线"},
					},
					{
						Title: "5.2 平行线及其判定",
						Tags:  []string{"平行线判定"},
						Subsections: []Subsection{
							{Title: "5.2.1 平行线的性质", Tags: []string{"平行线性质"}},
						},
					},
				},
			},
			{
				Name: "第六章 实数",
				Sections: []Section{
					{
						Title: "6.1 平方根",
						Tags:  []string{"平方根", "算术平方根"},
					},
					{
						Title: "6.2 立方根",
						Tags:  []string{"立方根"},
					},
					{
						Title: "6.3 实数",
						Tags:  []string{"无理数", "实数运算"},
					},
				},
			},
			{
				Name: "第八章 二元一次方程组",
				Sections: []Section{
					{
						Title: "8.1 二元一次方程组",
						Tags:  []string{"二元一次方程组"},
					},
					{
						Title: "8.2 消元",
						Subsections: []Subsection{
							{Title: "8.2.1 代入消元法", Tags: []string{"代入消元"}},
							{Title: "8.2.2 加减消元法", Tags: []string{"加减消元"}},
						},
					},
				},
			},
		},
	},
	{
		Key: "八年级上",
		Chapters: []Chapter{
			{
				Name: "第十一章 三角形",
				Sections: []Section{
					{
						Title: "11.1 与三角形有关的线段",
						Tags:  []string{"三角形三边关系", "高线中线角平分线"},
					},
					{
						Title: "11.2 与三角形有关的角",
						Tags:  []string{"三角形内角和", "外角"},
					},
				},
			},
			{
				Name: "第十二章 全等三角形",
				Sections: []Section{
					{
						Title: "12.1 全等三角形",
						Tags:  []string{"全等三角形性质"},
					},
					{
						Title: "12.2 三角形全等的判定",
						Tags:  []string{"全等判定"},
						Subsections: []Subsection{
							{Title: "12.2.1 SSS与SAS", Tags: []string{"全等判定"}},
							{Title: "12.2.2 ASA与AAS", Tags: []string{"全等判定"}},
						},
					},
				},
			},
			{
				Name: "第十四章 整式的乘法与因式分解",
				Sections: []Section{
					{
						Title: "14.1 整式的乘法",
						Tags:  []string{"幂的运算", "整式乘法"},
					},
					{
						Title: "14.2 乘法公式",
						Tags:  []string{"平方差公式", "完全平方公式"},
					},
					{
						Title: "14.3 因式分解",
						Tags:  []string{"提公因式", "公式法分解"},
					},
				},
			},
		},
	},
	{
		Key: "八年级下",
		Chapters: []Chapter{
			{
				Name: "第十七章 勾股定理",
				Sections: []Section{
					{
						Title: "17.1 勾股定理",
						Tags:  []string{"勾股定理"},
					},
					{
						Title: "17.2 勾股定理的逆定理",
						Tags:  []string{"勾股定理逆定理"},
					},
				},
			},
			{
				Name: "第十八章 平行四边形",
				Sections: []Section{
					{
						Title: "18.1 平行四边形",
						Tags:  []string{"平行四边形性质", "平行四边形判定"},
					},
					{
						Title: "18.2 特殊的平行四边形",
						Subsections: []Subsection{
							{Title: "18.2.1 矩形", Tags: []string{"矩形"}},
							{Title: "18.2.2 菱形", Tags: []string{"菱形"}},
							{Title: "18.2.3 正方形", Tags: []string{"正方形"}},
						},
					},
				},
			},
			{
				Name: "第十九章 一次函数",
				Sections: []Section{
					{
						Title: "19.1 函数",
						Tags:  []string{"函数概念", "函数图象"},
					},
					{
						Title: "19.2 一次函数",
						Tags:  []string{"一次函数", "一次函数应用"},
					},
				},
			},
		},
	},
	{
		Key: "九年级上",
		Chapters: []Chapter{
			{
				Name: "第二十一章 一元二次方程",
				Sections: []Section{
					{
						Title: "21.1 一元二次方程",
						Tags:  []string{"一元二次方程"},
					},
					{
						Title: "21.2 解一元二次方程",
						Subsections: []Subsection{
							{Title: "21.2.1 配方法", Tags: []string{"配方法"}},
							{Title: "21.2.2 公式法", Tags: []string{"求根公式", "判别式"}},
							{Title: "21.2.3 因式分解法", Tags: []string{"因式分解法"}},
						},
					},
					{
						Title: "21.3 实际问题与一元二次方程",
						Tags:  []string{"一元二次方程应用"},
					},
				},
			},
			{
				Name: "第二十二章 二次函数",
				Sections: []Section{
					{
						Title: "22.1 二次函数的图象和性质",
						Tags:  []string{"二次函数图象", "顶点式"},
					},
					{
						Title: "22.3 实际问题与二次函数",
						Tags:  []string{"二次函数最值", "二次函数应用"},
					},
				},
			},
			{
				Name: "第二十四章 圆",
				Sections: []Section{
					{
						Title: "24.1 圆的有关性质",
						Tags:  []string{"垂径定理", "圆周角"},
					},
					{
						Title: "24.2 点和圆、直线和圆的位置关系",
						Tags:  []string{"切线", "直线与圆位置关系"},
					},
				},
			},
		},
	},
	{
		Key: "九年级下",
		Chapters: []Chapter{
			{
				Name: "第二十六章 反比例函数",
				Sections: []Section{
					{
						Title: "26.1 反比例函数",
						Tags:  []string{"反比例函数", "反比例函数图象"},
					},
				},
			},
			{
				Name: "第二十七章 相似",
				Sections: []Section{
					{
						Title: "27.1 图形的相似",
						Tags:  []string{"相似多边形"},
					},
					{
						Title: "27.2 相似三角形",
						Tags:  []string{"相似三角形判定", "相似三角形性质"},
					},
				},
			},
			{
				Name: "第二十八章 锐角三角函数",
				Sections: []Section{
					{
						Title: "28.1 锐角三角函数",
						Tags:  []string{"正弦余弦正切"},
					},
					{
						Title: "28.2 解直角三角形及其应用",
						Tags:  []string{"解直角三角形", "仰角俯角"},
					},
				},
			},
		},
	},
}
